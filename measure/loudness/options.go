package loudness

import "github.com/cwbudde/algo-audiofeatures/dsp/core"

// defaultCaptureInterval is the series capture grid in seconds (10 Hz,
// the momentary update rate required by EBU Tech 3341).
const defaultCaptureInterval = 0.1

// MeterConfig defines configuration for the loudness meter.
type MeterConfig struct {
	core.ProcessorConfig
	Channels        int
	CaptureInterval float64
}

// MeterOption mutates a MeterConfig.
type MeterOption func(*MeterConfig)

// DefaultMeterConfig returns sensible defaults.
func DefaultMeterConfig() MeterConfig {
	return MeterConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Channels:        2,
		CaptureInterval: defaultCaptureInterval,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) MeterOption {
	return func(cfg *MeterConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the number of channels (1 for mono, 2 for stereo).
func WithChannels(channels int) MeterOption {
	return func(cfg *MeterConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithCaptureInterval sets the series capture grid in seconds.
func WithCaptureInterval(seconds float64) MeterOption {
	return func(cfg *MeterConfig) {
		if seconds > 0 {
			cfg.CaptureInterval = seconds
		}
	}
}

// ApplyMeterOptions applies zero or more options to the default config.
func ApplyMeterOptions(opts ...MeterOption) MeterConfig {
	cfg := DefaultMeterConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
