package weighting

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-audiofeatures/dsp/filter/biquad"
)

// Analog prototype pole frequencies shared by the standard curves, in Hz.
const (
	f1 = 20.598997 // double high-pass pole, all curves
	f2 = 107.65265 // single high-pass pole, A only
	f3 = 158.48932 // single high-pass pole, B only
	f4 = 737.86223 // single high-pass pole, A only
	f5 = 12194.217 // double low-pass pole, all curves
)

// Type selects a frequency weighting curve.
type Type int

const (
	// TypeA tracks the 40-phon equal-loudness contour, the common
	// choice for noise measurements.
	TypeA Type = iota

	// TypeB tracks the 70-phon contour, suited to mid-level program
	// material. The microdynamics measurement weights with this curve.
	TypeB

	// TypeC tracks the 100-phon contour, mostly seen in peak
	// measurements.
	TypeC

	// TypeZ applies no weighting at all: unity gain everywhere.
	TypeZ
)

func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	default:
		return "unknown"
	}
}

// recipe lists the analog poles of a weighting curve. Every matching
// zero sits at DC, so the pole set determines the curve completely.
type recipe struct {
	hp2 []float64 // second-order high-pass pole frequencies
	hp1 []float64 // first-order high-pass pole frequencies
	lp1 int       // number of first-order low-pass sections at f5
}

// New returns a [biquad.Chain] for the given curve at the given sample
// rate, normalized to 0 dB at the 1 kHz reference frequency.
//
// Panics if sampleRate is not positive or the type is unknown.
func New(t Type, sampleRate float64) *biquad.Chain {
	if sampleRate <= 0 {
		panic("weighting: sample rate must be positive")
	}

	switch t {
	case TypeA:
		return build(recipe{hp2: []float64{f1}, hp1: []float64{f2, f4}, lp1: 2}, sampleRate)
	case TypeB:
		return build(recipe{hp2: []float64{f1}, hp1: []float64{f3}, lp1: 2}, sampleRate)
	case TypeC:
		return build(recipe{hp2: []float64{f1}, lp1: 2}, sampleRate)
	case TypeZ:
		return biquad.NewChain([]biquad.Coefficients{{B0: 1}})
	default:
		panic("weighting: unknown type")
	}
}

// build bilinear-transforms the recipe's poles into biquad sections
// and normalizes the cascade at 1 kHz.
func build(r recipe, sr float64) *biquad.Chain {
	coeffs := make([]biquad.Coefficients, 0, len(r.hp2)+r.lp1+len(r.hp1))
	for _, f := range r.hp2 {
		coeffs = append(coeffs, highpass2(f, sr))
	}
	for range r.lp1 {
		coeffs = append(coeffs, lowpass1(sr))
	}
	for _, f := range r.hp1 {
		coeffs = append(coeffs, highpass1(f, sr))
	}

	return biquad.NewChain(coeffs, biquad.WithGain(referenceGain(coeffs, sr)))
}

// lowpass1 maps the prototype H(s) = w/(s+w) for the fixed pole at f5
// through the bilinear transform with K = tan(pi*f5/sr):
//
//	B0 = B1 = K/(1+K), A1 = (K-1)/(1+K)
func lowpass1(sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f5 / sr)
	d := 1 + k

	return biquad.Coefficients{
		B0: k / d,
		B1: k / d,
		A1: (k - 1) / d,
	}
}

// highpass2 maps the prototype H(s) = s^2/(s+w)^2, a double pole at f
// with two zeros at DC. With K = tan(pi*f/sr) and d = 1 + 2K + K^2:
//
//	B0 = 1/d, B1 = -2/d, B2 = 1/d
//	A1 = 2*(K^2-1)/d, A2 = (1-2K+K^2)/d
func highpass2(f, sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f / sr)
	k2 := k * k
	d := 1 + 2*k + k2

	return biquad.Coefficients{
		B0: 1 / d,
		B1: -2 / d,
		B2: 1 / d,
		A1: 2 * (k2 - 1) / d,
		A2: (1 - 2*k + k2) / d,
	}
}

// highpass1 maps the prototype H(s) = s/(s+w), a single pole at f with
// one zero at DC. With K = tan(pi*f/sr):
//
//	B0 = 1/(1+K), B1 = -1/(1+K), A1 = (K-1)/(1+K)
func highpass1(f, sr float64) biquad.Coefficients {
	k := math.Tan(math.Pi * f / sr)
	d := 1 + k

	return biquad.Coefficients{
		B0: 1 / d,
		B1: -1 / d,
		A1: (k - 1) / d,
	}
}

// referenceGain returns the input gain that pins the cascade magnitude
// to unity at 1 kHz.
func referenceGain(coeffs []biquad.Coefficients, sr float64) float64 {
	h := complex(1, 0)
	for i := range coeffs {
		h *= coeffs[i].Response(1000, sr)
	}

	return 1 / cmplx.Abs(h)
}
