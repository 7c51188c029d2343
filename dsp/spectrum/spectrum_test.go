package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofeatures/dsp/window"
)

func TestConverters(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0, 2i}

	mag := Magnitude(bins)
	pow := Power(bins)
	phase := Phase(bins)

	wantMag := []float64{5, math.Sqrt2, 0, 2}
	wantPow := []float64{25, 2, 0, 4}
	wantPhase := []float64{math.Atan2(4, 3), math.Atan2(-1, -1), 0, math.Pi / 2}

	for i := range bins {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("Magnitude[%d] = %g, want %g", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("Power[%d] = %g, want %g", i, pow[i], wantPow[i])
		}
		if math.Abs(phase[i]-wantPhase[i]) > 1e-12 {
			t.Errorf("Phase[%d] = %g, want %g", i, phase[i], wantPhase[i])
		}
	}
}

func TestConvertersEmpty(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Error("empty input must yield nil output")
	}
}

func TestConvertersScratchReuse(t *testing.T) {
	// Successive calls with different sizes reslice the pooled scratch;
	// the results must not be disturbed by earlier contents.
	big := make([]complex128, 1024)
	for i := range big {
		big[i] = complex(float64(i), -float64(i))
	}

	magBig := Magnitude(big)
	magSmall := Magnitude(big[:3])

	for i := range magSmall {
		if math.Abs(magSmall[i]-magBig[i]) > 1e-12 {
			t.Errorf("bin %d: %g after reuse, want %g", i, magSmall[i], magBig[i])
		}
	}
}

func TestBinsAdapters(t *testing.T) {
	bins := SliceBins([]complex128{1, 2i, -3})

	if n := bins.Len(); n != 3 {
		t.Fatalf("Len = %d, want 3", n)
	}

	mag := MagnitudeBins(bins)
	pow := PowerBins(bins)
	phase := PhaseBins(bins)

	wantMag := []float64{1, 2, 3}
	wantPow := []float64{1, 4, 9}
	wantPhase := []float64{0, math.Pi / 2, math.Pi}

	for i := range wantMag {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("MagnitudeBins[%d] = %g, want %g", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("PowerBins[%d] = %g, want %g", i, pow[i], wantPow[i])
		}
		if math.Abs(phase[i]-wantPhase[i]) > 1e-12 {
			t.Errorf("PhaseBins[%d] = %g, want %g", i, phase[i], wantPhase[i])
		}
	}
}

func TestBinsAdaptersNil(t *testing.T) {
	if MagnitudeBins(nil) != nil || PowerBins(nil) != nil || PhaseBins(nil) != nil {
		t.Error("nil source must yield nil output")
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, -1, 0, 0.5}
	im := []float64{4, -1, 0, -0.5}

	mag := make([]float64, len(re))
	MagnitudeFromParts(mag, re, im)

	pow := make([]float64, len(re))
	PowerFromParts(pow, re, im)

	for i := range re {
		wantPow := re[i]*re[i] + im[i]*im[i]
		if math.Abs(pow[i]-wantPow) > 1e-12 {
			t.Errorf("power[%d] = %g, want %g", i, pow[i], wantPow)
		}
		if math.Abs(mag[i]-math.Sqrt(wantPow)) > 1e-12 {
			t.Errorf("magnitude[%d] = %g, want %g", i, mag[i], math.Sqrt(wantPow))
		}
	}
}

// makeSineFrame generates exactly cycles full sine periods over n samples.
func makeSineFrame(n, cycles int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(cycles) * float64(i) / float64(n))
	}

	return out
}

func TestAnalyzerDCRectangular(t *testing.T) {
	a, err := NewAnalyzer(32, 32, window.TypeRectangular)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	frame := make([]float64, 32)
	for i := range frame {
		frame[i] = 1
	}

	mag, err := a.Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	if len(mag) != 17 {
		t.Fatalf("bin count: got %d, want 17", len(mag))
	}

	if math.Abs(mag[0]-32) > 1e-9 {
		t.Fatalf("DC bin: got %f, want 32", mag[0])
	}

	for i := 1; i < len(mag); i++ {
		if mag[i] > 1e-9 {
			t.Fatalf("bin %d: got %g, want 0", i, mag[i])
		}
	}
}

func TestAnalyzerDCHann(t *testing.T) {
	a, err := NewAnalyzer(32, 32, window.TypeHann)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	frame := make([]float64, 32)
	for i := range frame {
		frame[i] = 1
	}

	mag, err := a.Magnitude(frame)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	// The DC bin equals the coefficient sum of the symmetric Hann window:
	// 0.5*32 - 0.5 = 15.5.
	if math.Abs(mag[0]-15.5) > 1e-9 {
		t.Fatalf("DC bin: got %f, want 15.5", mag[0])
	}
}

func TestAnalyzerSineBinExact(t *testing.T) {
	const (
		n      = 64
		cycles = 8
	)

	a, err := NewAnalyzer(n, n, window.TypeRectangular)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	mag, err := a.Magnitude(makeSineFrame(n, cycles))
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	// A bin-centered sine concentrates all energy in one bin: |X[k]| = n/2.
	if math.Abs(mag[cycles]-n/2) > 1e-9 {
		t.Fatalf("tone bin: got %f, want %d", mag[cycles], n/2)
	}

	for i := range mag {
		if i == cycles {
			continue
		}

		if mag[i] > 1e-9 {
			t.Fatalf("bin %d: got %g, want 0", i, mag[i])
		}
	}
}

func TestAnalyzerSineHann(t *testing.T) {
	const (
		n      = 64
		cycles = 8
	)

	a, err := NewAnalyzer(n, n, window.TypeHann)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	mag, err := a.Magnitude(makeSineFrame(n, cycles))
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	// The Hann window spreads a bin-centered tone over three bins with
	// relative weights 0.25 / 0.5 / 0.25 of n/2.
	peakBin := 0
	for i := range mag {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	if peakBin != cycles {
		t.Fatalf("peak bin: got %d, want %d", peakBin, cycles)
	}

	if math.Abs(mag[cycles]-16) > 0.5 {
		t.Fatalf("tone bin: got %f, want ~16", mag[cycles])
	}

	if math.Abs(mag[cycles-1]-8) > 0.5 || math.Abs(mag[cycles+1]-8) > 0.5 {
		t.Fatalf("side bins: got %f / %f, want ~8", mag[cycles-1], mag[cycles+1])
	}

	if mag[cycles+12] > 0.5 {
		t.Fatalf("far bin: got %f, want ~0", mag[cycles+12])
	}
}

func TestAnalyzerMagnitudesFrameCount(t *testing.T) {
	a, err := NewAnalyzer(1024, 512, window.TypeHann)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	signal := make([]float64, 10000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 100)
	}

	spectra, err := a.Magnitudes(signal)
	if err != nil {
		t.Fatalf("Magnitudes: %v", err)
	}

	// (10000 - 1024) / 512 + 1 full frames.
	if len(spectra) != 18 {
		t.Fatalf("frame count: got %d, want 18", len(spectra))
	}

	for i, s := range spectra {
		if len(s) != a.Bins() {
			t.Fatalf("spectrum %d bin count: got %d, want %d", i, len(s), a.Bins())
		}
	}
}

func TestAnalyzerShortSignal(t *testing.T) {
	a, err := NewAnalyzer(128, 64, window.TypeHann)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	spectra, err := a.Magnitudes(make([]float64, 64))
	if err != nil {
		t.Fatalf("Magnitudes: %v", err)
	}

	if len(spectra) != 0 {
		t.Fatalf("expected no spectra for short signal, got %d", len(spectra))
	}
}

func TestAnalyzerErrors(t *testing.T) {
	if _, err := NewAnalyzer(1000, 512, window.TypeHann); err == nil {
		t.Fatal("expected error for non-power-of-two frame size")
	}

	if _, err := NewAnalyzer(0, 512, window.TypeHann); err == nil {
		t.Fatal("expected error for zero frame size")
	}

	if _, err := NewAnalyzer(1024, 0, window.TypeHann); err == nil {
		t.Fatal("expected error for zero hop size")
	}

	a, err := NewAnalyzer(64, 32, window.TypeHann)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	if _, err := a.Magnitude(make([]float64, 63)); err == nil {
		t.Fatal("expected error for frame length mismatch")
	}
}
