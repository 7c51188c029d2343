package extract

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofeatures/dsp/signal"
)

func TestCrestFactor_Sine(t *testing.T) {
	e, err := NewCrestFactor(testRate)
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	h := e.Headers()
	if len(h) != 1 || h[0] != "crest_factor" {
		t.Fatalf("Headers: got %v, want [crest_factor]", h)
	}

	vec, err := e.Compute(monoSine(t, 1000, 0.5, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !almostEqual(vec[0], math.Sqrt2, 1e-3) {
		t.Errorf("crest: got %g, want ~%g", vec[0], math.Sqrt2)
	}
}

func TestCrestFactor_Impulse(t *testing.T) {
	e, err := NewCrestFactor(testRate)
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	vec, err := e.Compute(monoBuf(t, signal.Impulse(1000, 500)))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// One unit sample in 1000: crest = 1 / sqrt(1/1000).
	want := math.Sqrt(1000)
	if !almostEqual(vec[0], want, 1e-9) {
		t.Errorf("crest: got %g, want %g", vec[0], want)
	}

	if vec[0] <= math.Sqrt2 {
		t.Errorf("impulse crest %g not above sine crest %g", vec[0], math.Sqrt2)
	}
}

func TestCrestFactor_Silence(t *testing.T) {
	e, err := NewCrestFactor(testRate)
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	vec, err := e.Compute(monoBuf(t, make([]float64, 1000)))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !math.IsNaN(vec[0]) {
		t.Errorf("silence crest: got %g, want NaN", vec[0])
	}
}

func TestCrestFactor_Framed(t *testing.T) {
	// 4410-sample frames hold exactly 100 cycles of a 1 kHz tone at
	// 44.1 kHz, so all ten frames carry identical content.
	e, err := NewCrestFactor(testRate, WithFrameSize(4410))
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	h := e.Headers()
	if len(h) != 2 || h[0] != "crest_factor.mean" || h[1] != "crest_factor.stdev" {
		t.Fatalf("Headers: got %v", h)
	}

	vec, err := e.Compute(monoSine(t, 1000, 0.5, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !almostEqual(vec[0], math.Sqrt2, 1e-3) {
		t.Errorf("crest mean: got %g, want ~%g", vec[0], math.Sqrt2)
	}

	if !almostEqual(vec[1], 0, 1e-12) {
		t.Errorf("crest stdev: got %g, want 0", vec[1])
	}
}

func TestCrestFactor_FramedDropsPartialTail(t *testing.T) {
	e, err := NewCrestFactor(testRate, WithFrameSize(1000))
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	// Two full frames of a steady tone plus a half frame holding a huge
	// spike. The spike must not reach the pool.
	sig := signal.Sine(441, testRate, 0.5, 2500)
	for i := 2000; i < 2500; i++ {
		sig[i] = 0
	}
	sig[2200] = 25

	vec, err := e.Compute(monoBuf(t, sig))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !almostEqual(vec[0], math.Sqrt2, 1e-3) {
		t.Errorf("crest mean with partial tail: got %g, want ~%g", vec[0], math.Sqrt2)
	}
}

func TestCrestFactor_FramedShortSignal(t *testing.T) {
	e, err := NewCrestFactor(testRate, WithFrameSize(2048))
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	vec, err := e.Compute(monoBuf(t, signal.Ones(100)))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(vec) != 2 {
		t.Fatalf("vector length: got %d, want 2", len(vec))
	}

	for i, v := range vec {
		if !math.IsNaN(v) {
			t.Errorf("value %d: got %g, want NaN", i, v)
		}
	}
}
