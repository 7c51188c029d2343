package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// parts is pooled scratch for unpacking complex bins into component slices.
type parts struct {
	re, im []float64
}

var partsPool = sync.Pool{
	New: func() any { return new(parts) },
}

func (p *parts) grow(n int) {
	if cap(p.re) < n {
		p.re = make([]float64, n)
		p.im = make([]float64, n)
	}

	p.re = p.re[:n]
	p.im = p.im[:n]
}

// split unpacks in into pooled component slices and applies kernel to them,
// returning the freshly allocated result.
func split(in []complex128, kernel func(dst, re, im []float64)) []float64 {
	out := make([]float64, len(in))

	p := partsPool.Get().(*parts)
	p.grow(len(in))

	for i, c := range in {
		p.re[i] = real(c)
		p.im[i] = imag(c)
	}

	kernel(out, p.re, p.im)
	partsPool.Put(p)

	return out
}

// ComplexBins is a read-only view of a complex spectrum. It decouples the
// converters from any particular FFT backend's output representation.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// SliceBins adapts a []complex128 as [ComplexBins].
type SliceBins []complex128

// Len returns the bin count.
func (s SliceBins) Len() int { return len(s) }

// At returns the bin value at index i.
func (s SliceBins) At(i int) complex128 { return s[i] }

// Magnitude returns |X[k]| for every bin. The arithmetic runs on the
// vecmath kernels; scratch memory is pooled, so in steady state only the
// result slice is allocated.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	return split(in, vecmath.Magnitude)
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// It is the zero-allocation path for callers that keep component slices
// around; all three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// MagnitudeBins returns |X[k]| for every bin of a [ComplexBins] source.
func MagnitudeBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Abs(in.At(i))
	}

	return out
}

// Power returns |X[k]|^2 for every bin. Like [Magnitude] it runs on the
// vecmath kernels with pooled scratch.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	return split(in, vecmath.Power)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst. All three
// slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// PowerBins returns |X[k]|^2 for every bin of a [ComplexBins] source.
func PowerBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	out := make([]float64, in.Len())
	for i := range out {
		c := in.At(i)
		out[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return out
}

// Phase returns arg(X[k]) in radians for every bin.
func Phase(in []complex128) []float64 {
	return PhaseBins(SliceBins(in))
}

// PhaseBins returns arg(X[k]) in radians for every bin of a [ComplexBins]
// source.
func PhaseBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}

	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Phase(in.At(i))
	}

	return out
}
