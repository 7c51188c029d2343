package window

// Cosine-sum window coefficient tables. A window is evaluated as
// sum(c[k] * cos(k * 2*pi*x)) for x in [0, 1], so the classic
// "a0 - a1*cos + a2*cos ..." forms carry alternating signs here.
var (
	hannCoeffs    = []float64{0.5, -0.5}
	hammingCoeffs = []float64{0.54, -0.46}

	blackmanCoeffs = []float64{0.42, -0.5, 0.08}

	// Harris 4-term minimum sidelobe (-92 dB).
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}

	// 5-term flat-top as popularized by MATLAB's flattopwin.
	flatTopCoeffs = []float64{
		0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368,
	}
)
