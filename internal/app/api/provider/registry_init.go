package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// ProviderCreator is a function that creates a backend from settings
type ProviderCreator func(settings Settings) (Transcriber, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// NewTranscriber builds the named backend.
func NewTranscriber(providerType string, settings Settings) (Transcriber, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}

	transcriber, err := creator(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", providerType, err)
	}
	return transcriber, nil
}
