package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-audiofeatures/dsp/frame"
	"github.com/cwbudde/algo-audiofeatures/dsp/window"
)

// Analyzer computes single-sided magnitude spectra of windowed signal frames.
//
// The analyzer owns its FFT plan and scratch buffers, so repeated calls do not
// allocate beyond the returned spectra. It is not safe for concurrent use.
type Analyzer struct {
	frameSize int
	hopSize   int
	coeffs    []float64
	plan      *algofft.Plan[complex128]
	in        []complex128
	out       []complex128
	re        []float64
	im        []float64
}

// NewAnalyzer creates an analyzer for frames of the given size, advancing by
// hopSize samples, windowed with the given window type. The frame size must
// be a power of two.
func NewAnalyzer(frameSize, hopSize int, typ window.Type) (*Analyzer, error) {
	if frameSize <= 0 || frameSize&(frameSize-1) != 0 {
		return nil, fmt.Errorf("spectrum: frame size must be a power of two: %d", frameSize)
	}

	if hopSize <= 0 {
		return nil, fmt.Errorf("spectrum: hop size must be > 0: %d", hopSize)
	}

	plan, err := algofft.NewPlan64(frameSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	bins := frameSize/2 + 1

	return &Analyzer{
		frameSize: frameSize,
		hopSize:   hopSize,
		coeffs:    window.Generate(typ, frameSize),
		plan:      plan,
		in:        make([]complex128, frameSize),
		out:       make([]complex128, frameSize),
		re:        make([]float64, bins),
		im:        make([]float64, bins),
	}, nil
}

// FrameSize returns the analysis frame length in samples.
func (a *Analyzer) FrameSize() int { return a.frameSize }

// HopSize returns the frame advance in samples.
func (a *Analyzer) HopSize() int { return a.hopSize }

// Bins returns the number of single-sided spectrum bins (frameSize/2 + 1).
func (a *Analyzer) Bins() int { return a.frameSize/2 + 1 }

// Magnitude windows one frame and returns its single-sided magnitude
// spectrum. The frame length must equal [Analyzer.FrameSize]. The returned
// slice is freshly allocated on every call.
func (a *Analyzer) Magnitude(samples []float64) ([]float64, error) {
	if len(samples) != a.frameSize {
		return nil, fmt.Errorf("spectrum: frame length %d does not match analyzer frame size %d",
			len(samples), a.frameSize)
	}

	for i, v := range samples {
		a.in[i] = complex(v*a.coeffs[i], 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := a.Bins()
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}

	mag := make([]float64, bins)
	MagnitudeFromParts(mag, a.re, a.im)

	return mag, nil
}

// Magnitudes slices the signal into frames starting at offset 0 and returns
// the magnitude spectrum of every full frame. A trailing segment shorter
// than one frame is dropped; a signal shorter than one frame yields no
// spectra.
func (a *Analyzer) Magnitudes(signal []float64) ([][]float64, error) {
	frames, err := frame.Split(signal, a.frameSize, a.hopSize)
	if err != nil {
		return nil, err
	}

	spectra := make([][]float64, len(frames))
	for i, f := range frames {
		spectra[i], err = a.Magnitude(f)
		if err != nil {
			return nil, err
		}
	}

	return spectra, nil
}
