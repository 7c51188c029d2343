package window

import "math"

// Analysis holds spectral figures of merit for a window, measured
// numerically from its coefficients rather than read from a table.
type Analysis struct {
	CoherentGain      float64 // DC gain, sum(w)/N
	ENBW              float64 // equivalent noise bandwidth in bins
	Bandwidth3dB      float64 // half-power main lobe width in bins
	HighestSidelobedB float64 // strongest sidelobe relative to DC, in dB
	FirstMinimumBins  float64 // position of the first spectral null, in bins
	ScallopLossdB     float64 // worst-case level error for an off-bin tone
}

// Analyze measures the spectral properties of a window by probing its
// DFT numerically. It works for arbitrary coefficients, including
// custom windows that have no tabulated metadata.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	// |DFT(0)|^2 is the coefficient sum squared.
	dcRef := sum * sum
	if dcRef == 0 {
		return Analysis{}
	}

	nf := float64(n)
	nullFreq := firstNull(coeffs, dcRef)

	a := Analysis{
		CoherentGain:      sum / nf,
		ENBW:              nf * sumSq / dcRef,
		Bandwidth3dB:      halfPowerWidth(coeffs, dcRef),
		HighestSidelobedB: peakSidelobe(coeffs, dcRef, nullFreq),
		FirstMinimumBins:  nullFreq * nf,
	}
	// Scallop loss is the response half a bin off centre.
	if m := magSqAt(coeffs, 0.5/nf); m > 0 {
		a.ScallopLossdB = 10 * math.Log10(m/dcRef)
	}
	return a
}

// magSqAt evaluates |DFT(f)|^2 at a normalised frequency in [0, 1).
func magSqAt(coeffs []float64, f float64) float64 {
	w := 2 * math.Pi * f
	re, im := 0.0, 0.0
	for k, c := range coeffs {
		s, cs := math.Sincos(w * float64(k))
		re += c * cs
		im -= c * s
	}
	return re*re + im*im
}

// halfPowerWidth finds the two-sided -3 dB main lobe width in bins by
// bisecting |DFT(f)|^2 = dcRef/2 on [0, Nyquist].
func halfPowerWidth(coeffs []float64, dcRef float64) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if magSqAt(coeffs, mid) > 0.5*dcRef {
			lo = mid
		} else {
			hi = mid
		}
	}
	// The main lobe extends to both sides of DC.
	return 2 * lo * float64(len(coeffs))
}

// firstNull locates the first spectral null beyond DC and returns its
// normalised frequency. A coarse outward scan finds the turn-around,
// then golden-section refinement pins it down.
func firstNull(coeffs []float64, dcRef float64) float64 {
	step := 1.0 / (8 * float64(len(coeffs)))

	// Only accept a minimum once the response has fallen to 10% of the
	// DC power. Flat-top windows ripple across a wide main lobe plateau
	// and would otherwise yield a false null well inside the lobe.
	floor := 0.1 * dcRef

	prev := dcRef
	lobe := step
	for f := step; f < 0.5; f += step {
		v := magSqAt(coeffs, f)
		if prev < floor && v > prev {
			lobe = f - step
			break
		}
		prev = v
	}

	a, b := lobe-2*step, lobe+2*step
	if a < 0 {
		a = 0
	}
	if b > 0.5 {
		b = 0.5
	}
	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c, d := b-phi*(b-a), a+phi*(b-a)
	for i := 0; i < 80; i++ {
		if magSqAt(coeffs, c) < magSqAt(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c, d = b-phi*(b-a), a+phi*(b-a)
	}
	return (a + b) / 2
}

// peakSidelobe scans from the first null out to Nyquist for the
// strongest sidelobe and returns its level in dB relative to DC.
func peakSidelobe(coeffs []float64, dcRef, from float64) float64 {
	step := 1.0 / (8 * float64(len(coeffs)))

	peakVal, peakFreq := 0.0, from
	for f := from; f < 0.5; f += step {
		if v := magSqAt(coeffs, f); v > peakVal {
			peakVal, peakFreq = v, f
		}
	}

	// Tighten the estimate around the coarse peak.
	fine := step / 32
	for f := peakFreq - step; f <= peakFreq+step; f += fine {
		if f < 0 {
			continue
		}
		if v := magSqAt(coeffs, f); v > peakVal {
			peakVal = v
		}
	}

	if peakVal <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peakVal/dcRef)
}
