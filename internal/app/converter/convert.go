package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/session"
)

// Result is the outcome for one local file
type Result struct {
	Path       string
	MIMEType   string
	Size       int64
	Text       string
	OutputPath string
	Err        error
}

// Converter transcribes local audio files one after another
type Converter struct {
	client   session.Client
	progress *ProgressManager
	logger   *zap.Logger
}

// NewConverter creates a converter. progress may be nil.
func NewConverter(client session.Client, progress *ProgressManager, logger *zap.Logger) *Converter {
	if progress == nil {
		progress = NewProgressManager(ProgressConfig{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		client:   client,
		progress: progress,
		logger:   logger,
	}
}

// Do transcribes every file in paths. Directories are expanded to the regular
// files they contain. When outputDir is set each transcript is also written
// there as <name>.txt. On cancellation the results gathered so far are
// returned with the context error.
func (c *Converter) Do(ctx context.Context, paths []string, outputDir string) ([]Result, error) {
	filesToProcess, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]Result, 0, len(filesToProcess))
	for _, path := range filesToProcess {
		if err := ctx.Err(); err != nil {
			c.progress.Shutdown()
			return results, err
		}
		results = append(results, c.convertToText(ctx, path, outputDir))
	}

	c.progress.Wait()
	return results, nil
}

func (c *Converter) convertToText(ctx context.Context, path, outputDir string) Result {
	result := Result{Path: path}
	spinner := c.progress.CreateSpinner(filepath.Base(path))

	file, err := loadAudio(path)
	if err != nil {
		result.Err = err
		spinner.Fail()
		c.logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
		return result
	}
	result.MIMEType = file.MIMEType
	result.Size = file.Size

	payload, err := audio.EncodeFile(file)
	if err != nil {
		result.Err = err
		spinner.Fail()
		return result
	}

	text, err := c.client.Transcribe(ctx, file.MIMEType, payload)
	if err != nil {
		result.Err = fmt.Errorf("%s%w", session.FailurePrefix, err)
		spinner.Fail()
		return result
	}
	result.Text = text

	if outputDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".txt"
		result.OutputPath = filepath.Join(outputDir, name)
		if err := os.WriteFile(result.OutputPath, []byte(text), 0o644); err != nil {
			result.Err = fmt.Errorf("failed to write transcript: %w", err)
			spinner.Fail()
			return result
		}
	}

	spinner.Done()
	c.logger.Debug("transcription saved",
		zap.String("path", path),
		zap.String("mime_type", file.MIMEType),
		zap.String("output", result.OutputPath),
	)
	return result
}

// loadAudio checks size and type before reading the whole file
func loadAudio(path string) (*audio.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}
	mimeType := audio.ResolveMIMEType(mtype.String(), nil)

	if err := audio.Validate(info.Size(), mimeType); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}
	return audio.NewFile(filepath.Base(path), mimeType, content), nil
}

func expandPaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files given")
	}

	var expanded []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}
		if !info.IsDir() {
			expanded = append(expanded, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && !strings.HasPrefix(entry.Name(), ".") {
				expanded = append(expanded, filepath.Join(path, entry.Name()))
			}
		}
	}
	return expanded, nil
}
