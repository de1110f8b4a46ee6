package flashdev

import "github.com/rs/zerolog"

// Config holds the decoder configuration.
type Config struct {
	// MaxSectors caps the number of sector table entries read from a
	// single record. The binary format terminates the table with a
	// sentinel, but a record missing its sentinel inside a large segment
	// would otherwise be read until coverage runs out.
	MaxSectors int

	// Logger receives per-record debug logging (optional)
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		MaxSectors: DefaultMaxSectors,
		Logger:     zerolog.Nop(),
	}
}

// Option is a functional option for configuring the decoder.
type Option func(*Config)

// WithMaxSectors sets the cap on sector table entries per record.
// Default is DefaultMaxSectors.
//
// Example:
//
//	dev, err := flashdev.New(segments, buffer, addr, flashdev.WithMaxSectors(64))
func WithMaxSectors(max int) Option {
	return func(c *Config) {
		if max > 0 {
			c.MaxSectors = max
		}
	}
}

// WithLogger sets a logger for decode operations.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	dev, err := flashdev.New(segments, buffer, addr, flashdev.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
