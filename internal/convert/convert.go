// File: internal/convert/convert.go

// Package convert uploads a spreadsheet to the conversion service and saves
// the generated document. It follows the same submit/receive/save pattern
// as the report generation pipeline, including the in-flight guard.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hollisng/reportforge/internal/pipeline"
)

// ErrUnsupportedExtension rejects input files outside a strategy's
// allow-list before anything is uploaded.
var ErrUnsupportedExtension = errors.New("unsupported spreadsheet extension")

// Result describes a completed conversion.
type Result struct {
	Filename string
	Path     string
	Size     int
}

// Strategy is one of the two observed response contracts of the conversion
// service. The production contract is unclear, so both are exposed by name
// and selected through configuration instead of being unified by guessing.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string
	// AllowedExtensions is the lowercase extension allow-list, dots included.
	AllowedExtensions() []string
	// Convert uploads the file content and delivers the produced document.
	Convert(ctx context.Context, filename string, data []byte) (*Result, error)
}

// Pipeline validates and submits spreadsheet files through a strategy. One
// Pipeline is one instance: its guard admits at most one outstanding
// conversion, mirroring the report pipeline's re-entrancy protection.
type Pipeline struct {
	strategy Strategy
	logger   *zap.Logger
	guard    pipeline.Guard
}

// NewPipeline creates a conversion pipeline around the given strategy.
func NewPipeline(strategy Strategy, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		strategy: strategy,
		logger:   logger.Named("convert"),
	}
}

// State exposes the pipeline's current lifecycle position.
func (p *Pipeline) State() pipeline.State {
	return p.guard.Current()
}

// Convert validates the file against the strategy's extension allow-list,
// uploads it, and saves the produced document. A second call while one is
// outstanding fails with pipeline.ErrSubmissionInFlight. The guard is
// released on every terminal path.
func (p *Pipeline) Convert(ctx context.Context, path string) (*Result, error) {
	if !p.guard.Enter(pipeline.StateValidating) {
		return nil, pipeline.ErrSubmissionInFlight
	}
	defer p.guard.Release()

	if err := p.validateExtension(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p.guard.Advance(pipeline.StateSubmitting)
	p.logger.Info("Uploading spreadsheet for conversion.",
		zap.String("file", filepath.Base(path)),
		zap.String("strategy", p.strategy.Name()),
		zap.Int("bytes", len(data)))

	result, err := p.strategy.Convert(ctx, filepath.Base(path), data)
	if err != nil {
		p.logger.Warn("Conversion failed.", zap.Error(err))
		return nil, err
	}

	p.logger.Info("Converted document saved.",
		zap.String("filename", result.Filename),
		zap.String("path", result.Path),
		zap.Int("bytes", result.Size))
	return result, nil
}

func (p *Pipeline) validateExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range p.strategy.AllowedExtensions() {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (allowed: %s)",
		ErrUnsupportedExtension, ext, strings.Join(p.strategy.AllowedExtensions(), ", "))
}

// htmlName derives a saved-document name from the uploaded file's name.
func htmlName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		base = "converted"
	}
	return base + ".html"
}
