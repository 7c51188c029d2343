package extract

import (
	"fmt"
	"math"
)

// DefaultStats returns a fresh copy of the default aggregation
// statistics applied by pooling extractors. Each extractor owns its own
// copy, so mutating the returned slice never affects other instances.
func DefaultStats() []string {
	return []string{StatMean, StatStdev}
}

type config struct {
	frameSize    int
	frameSizeSet bool
	stats        []string
}

// Option configures an extractor at construction time.
type Option func(*config)

// WithFrameSize sets the analysis frame size in samples. For
// [CrestFactor] and [PhaseCorrelation] this switches from whole-signal
// to framed mode with pooling; for [DynamicSpread] it overrides the
// default frame size.
func WithFrameSize(size int) Option {
	return func(c *config) {
		c.frameSize = size
		c.frameSizeSet = true
	}
}

// WithStats replaces the aggregation statistics applied by pooling
// extractors. See the Stat constants for the recognized names.
func WithStats(stats ...string) Option {
	return func(c *config) {
		c.stats = append([]string(nil), stats...)
	}
}

func newConfig(opts ...Option) config {
	cfg := config{stats: DefaultStats()}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// validate checks the configuration pieces shared by all extractors:
// the sample rate and the statistic names.
func (c config) validate(extractor string, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return &ConfigError{
			Extractor: extractor,
			Field:     "sample rate",
			Reason:    fmt.Sprintf("must be positive, got %v", sampleRate),
		}
	}

	return validStats(extractor, c.stats)
}

// validateFrameSize checks an explicitly configured or defaulted frame
// size.
func (c config) validateFrameSize(extractor string) error {
	if c.frameSize <= 0 {
		return &ConfigError{
			Extractor: extractor,
			Field:     "frame size",
			Reason:    fmt.Sprintf("must be positive, got %d", c.frameSize),
		}
	}

	return nil
}
