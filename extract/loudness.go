package extract

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/core"
	r128 "github.com/cwbudde/algo-audiofeatures/measure/loudness"
)

var loudnessFeatures = []string{
	"loudness_range",
	"microdynamics_95%",
	"microdynamics_100%",
	"peak_to_loudness",
	"top1db",
}

// Loudness derives program-level dynamics features from an R128 loudness
// measurement of a stereo buffer: the loudness range, the 95th-percentile
// and maximum micro-dynamics (momentary minus short-term loudness), the
// true-peak to integrated-loudness quotient, and the fraction of
// oversampled envelope values within 1 dB of full scale.
type Loudness struct {
	sampleRate float64
}

// NewLoudness creates a loudness extractor for stereo signals at the given
// sample rate. It neither frames nor pools; [WithFrameSize] is rejected.
func NewLoudness(sampleRate float64, opts ...Option) (*Loudness, error) {
	cfg := newConfig(opts...)
	if cfg.frameSizeSet {
		return nil, &ConfigError{
			Extractor: "loudness",
			Field:     "frame size",
			Reason:    "not configurable",
		}
	}

	if err := cfg.validate("loudness", sampleRate); err != nil {
		return nil, err
	}

	return &Loudness{sampleRate: sampleRate}, nil
}

// Headers implements [Extractor].
func (e *Loudness) Headers() []string {
	return append([]string(nil), loudnessFeatures...)
}

// Compute implements [Extractor]. The buffer must be stereo.
func (e *Loudness) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("loudness", buf, 2); err != nil {
		return nil, err
	}

	res, err := r128.Analyze(buf.Samples(), e.sampleRate)
	if err != nil {
		return nil, err
	}

	// Momentary and short-term series share the meter's 100 ms grid and
	// are always the same length.
	micro := make([]float64, len(res.Momentary))
	for i := range micro {
		micro[i] = res.Momentary[i] - res.ShortTerm[i]
	}

	ldr95 := percentile(micro, 0.95)
	ldrMax := floats.Max(micro)

	det := r128.NewTruePeakDetector(4)

	envLeft, err := det.Envelope(buf.Channel(0))
	if err != nil {
		return nil, err
	}

	envRight, err := det.Envelope(buf.Channel(1))
	if err != nil {
		return nil, err
	}

	truePeak := math.Max(r128.EnvelopePeakDB(envLeft), r128.EnvelopePeakDB(envRight))

	// Both factors are dB figures; the feature is their quotient, not a
	// dB difference.
	peakToLoudness := truePeak / res.Integrated

	threshold := core.DBToLinear(-1)

	over := 0
	for _, v := range envLeft {
		if v > threshold {
			over++
		}
	}

	// The left envelope feeds both channel counts.
	top1 := float64(2*over) / float64(len(envLeft)+len(envRight))

	return []float64{res.Range, ldr95, ldrMax, peakToLoudness, top1}, nil
}
