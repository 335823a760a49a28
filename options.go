package bindex

import "log/slog"

// EngineOptions configures a StrictEngine.
type EngineOptions struct {
	Logger   *slog.Logger
	Capacity int
}

// Option is a functional option for configuring NewStrictEngine.
type Option func(*EngineOptions)

func defaultOptions() *EngineOptions {
	return &EngineOptions{Logger: slog.Default()}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(log *slog.Logger) Option {
	return func(o *EngineOptions) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithCapacity pre-sizes the index for the expected number of names.
func WithCapacity(n int) Option {
	return func(o *EngineOptions) {
		if n > 0 {
			o.Capacity = n
		}
	}
}
