package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the transfer function on the unit circle at the
// given frequency, i.e. H(e^jw) with w = 2*pi*freqHz/sampleRate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))

	num := complex(c.B0, 0) + z*(complex(c.B1, 0)+z*complex(c.B2, 0))
	den := 1 + z*(complex(c.A1, 0)+z*complex(c.A2, 0))

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 without touching complex
// arithmetic. For z on the unit circle,
//
//	|c0 + c1*z^-1 + c2*z^-2|^2 = c0^2 + c1^2 + c2^2
//	    + 2*(c0*c1 + c1*c2)*cos(w) + 2*c0*c2*cos(2w)
//
// applied to numerator and denominator separately.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	cosw, cos2w := math.Cos(w), math.Cos(2*w)

	num := quadMagSq(c.B0, c.B1, c.B2, cosw, cos2w)
	den := quadMagSq(1, c.A1, c.A2, cosw, cos2w)

	return num / den
}

func quadMagSq(c0, c1, c2, cosw, cos2w float64) float64 {
	return c0*c0 + c1*c1 + c2*c2 + 2*((c0*c1+c1*c2)*cosw+c0*c2*cos2w)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the cascade response: the product of the section
// responses times the input gain.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// impulse collects n output samples of process driven by a unit
// impulse.
func impulse(n int, process func(float64) float64) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	ir[0] = process(1)
	for i := 1; i < n; i++ {
		ir[i] = process(0)
	}

	return ir
}

// ImpulseResponse returns the first n samples of h[n], computed on a
// scratch copy so the receiver's delay line is left untouched.
func (s *Section) ImpulseResponse(n int) []float64 {
	scratch := Section{Coefficients: s.Coefficients}

	return impulse(n, scratch.ProcessSample)
}

// ImpulseResponse returns the first n samples of the cascade's h[n],
// computed on scratch sections without disturbing the receiver.
func (c *Chain) ImpulseResponse(n int) []float64 {
	scratch := Chain{sections: make([]Section, len(c.sections)), gain: c.gain}
	for i := range c.sections {
		scratch.sections[i].Coefficients = c.sections[i].Coefficients
	}

	return impulse(n, scratch.ProcessSample)
}
