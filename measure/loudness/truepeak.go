package loudness

import (
	"math"

	"github.com/cwbudde/algo-audiofeatures/dsp/core"
	"github.com/cwbudde/algo-audiofeatures/dsp/resample"
)

// defaultOversampling is the oversampling factor recommended by
// ITU-R BS.1770-4 annex 2 for true-peak estimation.
const defaultOversampling = 4

// TruePeakDetector estimates inter-sample peaks by oversampling a channel
// and rectifying the result. The envelope can exceed the sample peak when
// the waveform peaks between samples.
type TruePeakDetector struct {
	factor int
}

// NewTruePeakDetector returns a detector with the given oversampling
// factor. Factors below 2 fall back to the default of 4.
func NewTruePeakDetector(factor int) *TruePeakDetector {
	if factor < 2 {
		factor = defaultOversampling
	}

	return &TruePeakDetector{factor: factor}
}

// Factor returns the oversampling factor.
func (d *TruePeakDetector) Factor() int {
	return d.factor
}

// Envelope returns the rectified oversampled peak envelope of samples.
// The result has factor times the input length.
func (d *TruePeakDetector) Envelope(samples []float64) ([]float64, error) {
	out, err := resample.Resample(samples, d.factor, 1)
	if err != nil {
		return nil, err
	}

	for i, v := range out {
		out[i] = math.Abs(v)
	}

	return out, nil
}

// PeakDB returns the maximum of the peak envelope in dBFS.
// Silence yields -Inf.
func (d *TruePeakDetector) PeakDB(samples []float64) (float64, error) {
	env, err := d.Envelope(samples)
	if err != nil {
		return 0, err
	}

	return EnvelopePeakDB(env), nil
}

// EnvelopePeakDB returns the maximum of a rectified peak envelope in
// dBFS. An empty or silent envelope yields -Inf.
func EnvelopePeakDB(env []float64) float64 {
	peak := 0.0
	for _, v := range env {
		if v > peak {
			peak = v
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}

	return core.LinearToDB(peak)
}
