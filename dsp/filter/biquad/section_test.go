package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// testCoeffs is a stable lowpass-like section used throughout the
// filtering tests: B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04.
func testCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

// rampInput produces a deterministic, sign-varying test signal.
func rampInput(n int) []float64 {
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(0.7*float64(i)) + 0.25*float64(i%3)
	}

	return in
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	if s := NewSection(c); s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}

	// A fresh section must start from silence: with a pure passthrough
	// the very first output already equals the input.
	s := NewSection(Coefficients{B0: 1})
	if y := s.ProcessSample(0.5); y != 0.5 {
		t.Fatalf("fresh section state not zero: first output %v", y)
	}
}

func TestProcessSampleKnownFilters(t *testing.T) {
	cases := []struct {
		name   string
		coeffs Coefficients
		input  []float64
		want   []float64
	}{
		{
			name:   "passthrough",
			coeffs: Coefficients{B0: 1},
			input:  []float64{1, 0, -1, 0.5, 0.25},
			want:   []float64{1, 0, -1, 0.5, 0.25},
		},
		{
			// y[n] = 0.5*x[n] + 0.5*x[n-1]
			name:   "two_tap_average",
			coeffs: Coefficients{B0: 0.5, B1: 0.5},
			input:  []float64{1, 1, 1, 1},
			want:   []float64{0.5, 1, 1, 1},
		},
		{
			// y[n] = x[n-1]
			name:   "unit_delay",
			coeffs: Coefficients{B1: 1},
			input:  []float64{1, 2, 3, 4, 5},
			want:   []float64{0, 1, 2, 3, 4},
		},
		{
			name:   "zero_coefficients",
			coeffs: Coefficients{},
			input:  []float64{1, 1, 1, 1},
			want:   []float64{0, 0, 0, 0},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSection(c.coeffs)
			for i, x := range c.input {
				if y := s.ProcessSample(x); !almostEqual(y, c.want[i], eps) {
					t.Errorf("sample %d: got %v, want %v", i, y, c.want[i])
				}
			}
		})
	}
}

func TestProcessSampleRecurrence(t *testing.T) {
	// Impulse response of testCoeffs, traced by hand through the DF-II-T
	// recurrence (state registers z1, z2 start at zero):
	//
	//	n=0: y = 0.25          z1 = 0.5+0.05   = 0.55    z2 = 0.25-0.01 = 0.24
	//	n=1: y = 0.55          z1 = 0.11+0.24  = 0.35    z2 = -0.022
	//	n=2: y = 0.35          z1 = 0.07-0.022 = 0.048   z2 = -0.014
	//	n=3: y = 0.048
	s := NewSection(testCoeffs())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("impulse response[%d]: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	// Lengths around the unrolling boundary: empty, single, odd and even
	// blocks all have to agree with the per-sample path.
	for _, n := range []int{0, 1, 2, 3, 7, 8, 9, 64, 65} {
		bySample := NewSection(testCoeffs())
		byBlock := NewSection(testCoeffs())

		input := rampInput(n)

		block := make([]float64, n)
		copy(block, input)
		byBlock.ProcessBlock(block)

		for i, x := range input {
			want := bySample.ProcessSample(x)
			if !almostEqual(block[i], want, eps) {
				t.Fatalf("n=%d sample %d: block=%.17g sample=%.17g", n, i, block[i], want)
			}
		}

		// Carried state must agree as well: the next sample after the
		// block has to match.
		if got, want := byBlock.ProcessSample(0.5), bySample.ProcessSample(0.5); !almostEqual(got, want, eps) {
			t.Fatalf("n=%d: state after block diverged: %.17g vs %.17g", n, got, want)
		}
	}
}

func TestReset(t *testing.T) {
	warmed := NewSection(testCoeffs())
	warmed.ProcessSample(1)
	warmed.ProcessSample(0.5)
	warmed.Reset()

	fresh := NewSection(testCoeffs())
	for i, x := range rampInput(8) {
		want := fresh.ProcessSample(x)
		if got := warmed.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Errorf("sample %d after reset: got %.15f, want %.15f", i, got, want)
		}
	}
}

func TestImpulseResponseDecays(t *testing.T) {
	// testCoeffs has both poles well inside the unit circle, so the
	// impulse response must die off instead of diverging.
	s := NewSection(testCoeffs())
	s.ProcessSample(1)

	var tail float64
	for i := 0; i < 10000; i++ {
		y := math.Abs(s.ProcessSample(0))
		if i >= 9900 {
			tail = math.Max(tail, y)
		}
	}

	if tail > 1e-100 {
		t.Errorf("output did not decay: tail max %v", tail)
	}
}
