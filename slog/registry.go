// Package slog provides logging decorators for the extraction pipeline
// using the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/jpsouza/lattes"
)

// Ensure LoggingRegistry implements lattes.ExtractorRegistry.
var _ lattes.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// category routing.
type LoggingRegistry struct {
	next   lattes.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next lattes.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(category lattes.Category) lattes.Extractor {
	return r.next.Get(category)
}

// GetForLabel resolves the label, logs the routing decision, and returns the
// extractor.
func (r *LoggingRegistry) GetForLabel(label string) lattes.Extractor {
	begin := time.Now()
	extractor := r.next.GetForLabel(label)
	categoryName := string(extractor.Category())
	if extractor.Category() == lattes.CategoryUnknown {
		categoryName = "(unknown)"
	}
	r.logger.Info("category routing",
		"label", label,
		"category", categoryName,
		"duration", time.Since(begin),
	)
	return extractor
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(category lattes.Category, e lattes.Extractor) {
	r.next.Register(category, e)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []lattes.Category {
	return r.next.List()
}
