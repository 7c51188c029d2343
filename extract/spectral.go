package extract

import (
	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/spectrum"
	"github.com/cwbudde/algo-audiofeatures/dsp/window"
	frequencystats "github.com/cwbudde/algo-audiofeatures/stats/frequency"
	"github.com/cwbudde/algo-audiofeatures/stats/shape"
)

const (
	spectralFrameSize = 2048
	spectralHopSize   = 1024

	harshLowHz    = 2000
	harshHighHz   = 5000
	lowBandLowHz  = 20
	lowBandHighHz = 80
)

var spectralFeatures = []string{
	"rolloff_85",
	"rolloff_95",
	"spectral_centroid",
	"spectral_spread",
	"spectral_skewness",
	"spectral_kurtosis",
	"spectral_flatness",
	"spectral_entropy",
	"harsh",
	"energyLF",
}

// Spectral computes frame-wise spectral shape features over Hann-windowed
// frames of 2048 samples with 50% overlap: rolloff frequencies at 85% and
// 95% of cumulative energy, centroid, spread, skewness, kurtosis, flatness,
// entropy, and the energy ratio of the harsh (2–5 kHz) and low (20–80 Hz)
// bands. Each feature is pooled across frames and aggregated.
type Spectral struct {
	sampleRate float64
	stats      []string
}

// NewSpectral creates a spectral extractor for signals at the given sample
// rate. The frame geometry is fixed; [WithFrameSize] is rejected.
func NewSpectral(sampleRate float64, opts ...Option) (*Spectral, error) {
	cfg := newConfig(opts...)
	if cfg.frameSizeSet {
		return nil, &ConfigError{
			Extractor: "spectral",
			Field:     "frame size",
			Reason:    "not configurable",
		}
	}

	if err := cfg.validate("spectral", sampleRate); err != nil {
		return nil, err
	}

	return &Spectral{sampleRate: sampleRate, stats: cfg.stats}, nil
}

// Headers implements [Extractor].
func (e *Spectral) Headers() []string {
	return poolHeaders(spectralFeatures, e.stats)
}

// Compute implements [Extractor]. The buffer is mixed to mono before
// analysis; signals shorter than one frame yield NaN in every slot.
func (e *Spectral) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("spectral", buf, 0); err != nil {
		return nil, err
	}

	analyzer, err := spectrum.NewAnalyzer(spectralFrameSize, spectralHopSize, window.TypeHann)
	if err != nil {
		return nil, err
	}

	spectra, err := analyzer.Magnitudes(monoSignal(buf))
	if err != nil {
		return nil, err
	}

	pool := NewStatPool()

	for _, mag := range spectra {
		pool.Add("rolloff_85", frequencystats.Rolloff(mag, e.sampleRate, 0.85))
		pool.Add("rolloff_95", frequencystats.Rolloff(mag, e.sampleRate, 0.95))

		moments := frequencystats.CentralMoments(mag, e.sampleRate)
		spread, skewness, kurtosis := shape.DistributionShape(moments)

		pool.Add("spectral_centroid", frequencystats.Centroid(mag, e.sampleRate))
		pool.Add("spectral_spread", spread)
		pool.Add("spectral_skewness", skewness)
		pool.Add("spectral_kurtosis", kurtosis)
		pool.Add("spectral_flatness", frequencystats.Flatness(mag))
		pool.Add("spectral_entropy", frequencystats.Entropy(mag))
		pool.Add("harsh", frequencystats.EnergyBandRatio(mag, e.sampleRate, harshLowHz, harshHighHz))
		pool.Add("energyLF", frequencystats.EnergyBandRatio(mag, e.sampleRate, lowBandLowHz, lowBandHighHz))
	}

	return aggregate(pool, spectralFeatures, e.stats), nil
}
