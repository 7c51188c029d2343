package design

import (
	"math"

	"github.com/cwbudde/algo-audiofeatures/dsp/filter/biquad"
)

// defaultQ is the Butterworth quality factor, substituted whenever a
// caller passes a non-positive or non-finite Q.
const defaultQ = 1 / math.Sqrt2

// cookbook carries the trigonometric terms every RBJ design shares:
// sin and cos of the normalized center frequency, and the bandwidth
// term alpha = sin(w0)/(2*Q).
type cookbook struct {
	sin, cos, alpha float64
}

// newCookbook validates the design point and computes the shared
// terms. ok is false when the sample rate is unusable or freq lies
// outside (0, Nyquist).
func newCookbook(freq, q, sampleRate float64) (cookbook, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return cookbook{}, false
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return cookbook{}, false
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	sin, cos := math.Sincos(2 * math.Pi * freq / sampleRate)

	return cookbook{sin: sin, cos: cos, alpha: sin / (2 * q)}, true
}

// normalize divides the section through by a0, or returns a zero
// section when a0 is unusable.
func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{
		B0: b0 / a0, B1: b1 / a0, B2: b2 / a0,
		A1: a1 / a0, A2: a2 / a0,
	}
}

// BilinearTransform maps an analog second-order polynomial
// c0*s^2 + c1*s + c2 onto d0 + d1*z^-1 + d2*z^-2, normalized so that
// d0 = 1. Degenerate inputs map to the identity polynomial.
func BilinearTransform(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	identity := [3]float64{1, 0, 0}
	if sampleRate <= 0 {
		return identity
	}

	k := 2 * sampleRate
	c0, c1, c2 := sCoeffs[0], sCoeffs[1], sCoeffs[2]

	d0 := c0*k*k + c1*k + c2
	if d0 == 0 || math.IsNaN(d0) || math.IsInf(d0, 0) {
		return identity
	}

	return [3]float64{1, (-2*c0*k*k + 2*c2) / d0, (c0*k*k - c1*k + c2) / d0}
}

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	half := (1 - t.cos) / 2

	return normalize(
		half, 1-t.cos, half,
		1+t.alpha, -2*t.cos, 1-t.alpha,
	)
}

// Highpass designs a highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	half := (1 + t.cos) / 2

	return normalize(
		half, -(1 + t.cos), half,
		1+t.alpha, -2*t.cos, 1-t.alpha,
	)
}

// Bandpass designs a constant-skirt-gain bandpass biquad.
func Bandpass(freq, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(
		t.sin/2, 0, -t.sin/2,
		1+t.alpha, -2*t.cos, 1-t.alpha,
	)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(
		1, -2*t.cos, 1,
		1+t.alpha, -2*t.cos, 1-t.alpha,
	)
}

// Allpass designs an allpass biquad centered at freq (Hz).
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	return normalize(
		1-t.alpha, -2*t.cos, 1+t.alpha,
		1+t.alpha, -2*t.cos, 1-t.alpha,
	)
}

// Peak designs a peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)

	return normalize(
		1+t.alpha*a, -2*t.cos, 1-t.alpha*a,
		1+t.alpha/a, -2*t.cos, 1-t.alpha/a,
	)
}

// LowShelf designs a low-shelf biquad with gain in dB.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * t.alpha
	cw := t.cos

	return normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
}

// HighShelf designs a high-shelf biquad with gain in dB.
func HighShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	t, ok := newCookbook(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * t.alpha
	cw := t.cos

	return normalize(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}
