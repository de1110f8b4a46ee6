package elfmem

import "github.com/rs/zerolog"

// Config holds the resolver configuration.
type Config struct {
	// Logger receives per-segment debug logging (optional)
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}

// Option is a functional option for configuring resolution.
type Option func(*Config)

// WithLogger sets a logger for resolution. Each candidate segment is
// logged at debug level with its address and size.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	window, ok := elfmem.Resolve(segments, buffer, addr, 160, elfmem.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
