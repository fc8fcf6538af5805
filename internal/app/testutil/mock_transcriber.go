package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"speaker-scribe/internal/app/api/provider"
)

// MockTranscriber is a mock implementation of provider.Transcriber.
// Every Submit is recorded before the testify expectations are consulted.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	Name     string
	requests []*provider.Request
	gate     chan struct{}
}

// NewMockTranscriber creates a new MockTranscriber bound to t
func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{Name: "mock"}
	m.Test(t)
	return m
}

// Submit implements provider.Transcriber
func (m *MockTranscriber) Submit(ctx context.Context, request *provider.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, request)
	gate := m.gate
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

// GetProviderInfo implements provider.Transcriber
func (m *MockTranscriber) GetProviderInfo() provider.ProviderInfo {
	return provider.ProviderInfo{
		Name:         m.Name,
		DisplayName:  "Mock Transcriber",
		DefaultModel: "mock-model",
	}
}

// Hold makes subsequent Submit calls block until the returned release func is called.
func (m *MockTranscriber) Hold() (release func()) {
	gate := make(chan struct{})

	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			m.gate = nil
			m.mu.Unlock()
			close(gate)
		})
	}
}

// CallCount returns how many requests reached Submit
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or nil
func (m *MockTranscriber) LastRequest() *provider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}
