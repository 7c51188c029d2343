// Package signal generates deterministic reference signals: sines,
// seeded noise, impulses, and constants. Identical arguments always
// produce identical samples, which keeps measurements and tests
// reproducible across runs.
package signal

import (
	"math"
	"math/rand"
)

// Sine returns n samples of a sine wave at freqHz sampled at
// sampleRate, starting at phase zero.
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise returns n samples of uniform white noise in
// [-amplitude, amplitude]. The same seed yields the same sequence.
func Noise(seed int64, amplitude float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse returns a length-n signal that is zero everywhere except for
// a unit spike at pos. A pos outside [0, n) leaves the signal all zero.
func Impulse(n, pos int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// DC returns n samples pinned to value.
func DC(value float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns n unit samples.
func Ones(n int) []float64 {
	return DC(1, n)
}
