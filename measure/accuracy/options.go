package accuracy

import "math"

// ReferenceFunc is the trusted exponential samples are compared against.
type ReferenceFunc func(x float64) float64

// Config defines how a validation run evaluates samples.
type Config struct {
	Reference ReferenceFunc
	// ChunkSize is how many samples are generated and evaluated at once.
	ChunkSize int
}

// Option mutates a Config.
type Option func(*Config)

const defaultChunkSize = 1024

// DefaultConfig returns math.Exp as reference with 1024-sample chunks.
func DefaultConfig() Config {
	return Config{
		Reference: math.Exp,
		ChunkSize: defaultChunkSize,
	}
}

// WithReference replaces the reference exponential.
func WithReference(fn ReferenceFunc) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.Reference = fn
		}
	}
}

// WithChunkSize sets the evaluation chunk size. It is rounded up to a
// multiple of 8 so every batch width divides it.
func WithChunkSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.ChunkSize = (n + 7) &^ 7
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
