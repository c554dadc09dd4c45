package xbrl

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures a parsing engine.
type Option func(*Options)

// Options holds all engine configuration.
type Options struct {
	// MaxValidationErrors caps collected validation errors per document
	// (0 = unlimited). Overflowing issues are counted but dropped.
	MaxValidationErrors int

	// ResolveFootnotes enables footnoteLink resolution so facts carry
	// their footnote identifiers.
	ResolveFootnotes bool

	// WorkerCount is the worker count for batch parsing.
	WorkerCount int

	// DocumentCacheSize is the capacity of the parsed-document LRU cache
	// (0 disables caching). A Validate followed by a Parse of the same
	// source then reuses the parsed tree.
	DocumentCacheSize int

	// CollectMetrics enables parse metric collection.
	CollectMetrics bool

	// Logger receives structured parse logging. Defaults to a no-op.
	Logger zerolog.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxValidationErrors: 0, // unlimited
		ResolveFootnotes:    true,
		WorkerCount:         runtime.NumCPU(),
		DocumentCacheSize:   0, // disabled
		CollectMetrics:      true,
		Logger:              zerolog.Nop(),
	}
}

// WithMaxValidationErrors caps collected validation errors per document.
// Use 0 for unlimited.
func WithMaxValidationErrors(max int) Option {
	return func(o *Options) {
		o.MaxValidationErrors = max
	}
}

// WithFootnotes enables or disables footnoteLink resolution.
func WithFootnotes(enable bool) Option {
	return func(o *Options) {
		o.ResolveFootnotes = enable
	}
}

// WithWorkerCount sets the worker count for batch parsing.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithDocumentCache sets the parsed-document cache capacity.
// Use 0 to disable caching.
func WithDocumentCache(size int) Option {
	return func(o *Options) {
		if size >= 0 {
			o.DocumentCacheSize = size
		}
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}

// WithLogger sets the structured logger used by the engine.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
