package extract

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/signal"
)

const testRate = 44100.0

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return math.Abs(a-b) <= tol
}

func monoBuf(t *testing.T, samples []float64) *audio.Buffer {
	t.Helper()

	buf, err := audio.Mono(samples, testRate)
	if err != nil {
		t.Fatalf("Mono: %v", err)
	}

	return buf
}

func stereoBuf(t *testing.T, left, right []float64) *audio.Buffer {
	t.Helper()

	buf, err := audio.Stereo(left, right, testRate)
	if err != nil {
		t.Fatalf("Stereo: %v", err)
	}

	return buf
}

func monoSine(t *testing.T, freq, amplitude, seconds float64) *audio.Buffer {
	t.Helper()

	n := int(seconds * testRate)

	return monoBuf(t, signal.Sine(freq, testRate, amplitude, n))
}

func stereoSine(t *testing.T, freq, ampLeft, ampRight, seconds float64) *audio.Buffer {
	t.Helper()

	n := int(seconds * testRate)
	left := signal.Sine(freq, testRate, ampLeft, n)
	right := signal.Sine(freq, testRate, ampRight, n)

	return stereoBuf(t, left, right)
}

// feature returns the vector entry for the named header.
func feature(t *testing.T, e Extractor, vec []float64, name string) float64 {
	t.Helper()

	for i, h := range e.Headers() {
		if h == name {
			return vec[i]
		}
	}

	t.Fatalf("no header %q", name)

	return 0
}

func sameVector(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}

func allStats() []string {
	return []string{
		StatMean, StatStdev, StatVar, StatMedian,
		StatMin, StatMax, StatSkew, StatKurt,
	}
}

func TestCatalog_Order(t *testing.T) {
	want := []string{
		"spectral",
		"crest_factor",
		"loudness",
		"dynamic_spread",
		"distortion",
		"stereo",
		"phase_correlation",
	}

	infos := Catalog()
	if len(infos) != len(want) {
		t.Fatalf("Catalog: got %d entries, want %d", len(infos), len(want))
	}

	stereoOnly := map[string]bool{
		"loudness":          true,
		"stereo":            true,
		"phase_correlation": true,
	}

	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, info.Name, want[i])
		}

		if info.Stereo != stereoOnly[info.Name] {
			t.Errorf("%s: Stereo = %v, want %v", info.Name, info.Stereo, stereoOnly[info.Name])
		}
	}
}

// Every extractor must return exactly one value per header, for the
// default configuration and for the full statistic set.
func TestExtractors_HeaderVectorAlignment(t *testing.T) {
	mono := monoSine(t, 1000, 0.5, 1)
	stereo := stereoSine(t, 1000, 0.5, 0.4, 1)

	configs := [][]Option{
		nil,
		{WithStats(allStats()...)},
	}

	for _, info := range Catalog() {
		for ci, opts := range configs {
			e, err := info.New(testRate, opts...)
			if err != nil {
				t.Fatalf("%s config %d: New: %v", info.Name, ci, err)
			}

			buf := mono
			if info.Stereo {
				buf = stereo
			}

			vec, err := e.Compute(buf)
			if err != nil {
				t.Fatalf("%s config %d: Compute: %v", info.Name, ci, err)
			}

			if got, want := len(vec), len(e.Headers()); got != want {
				t.Errorf("%s config %d: vector length %d, headers %d", info.Name, ci, got, want)
			}
		}
	}
}

func TestExtractors_FramedHeaderVectorAlignment(t *testing.T) {
	mono := monoSine(t, 1000, 0.5, 1)
	stereo := stereoSine(t, 1000, 0.5, 0.4, 1)

	crestExt, err := NewCrestFactor(testRate, WithFrameSize(4096))
	if err != nil {
		t.Fatalf("NewCrestFactor: %v", err)
	}

	spreadExt, err := NewDynamicSpread(testRate, WithFrameSize(1024))
	if err != nil {
		t.Fatalf("NewDynamicSpread: %v", err)
	}

	phaseExt, err := NewPhaseCorrelation(testRate, WithFrameSize(8192))
	if err != nil {
		t.Fatalf("NewPhaseCorrelation: %v", err)
	}

	cases := []struct {
		name string
		ext  Extractor
		buf  *audio.Buffer
	}{
		{"crest_factor", crestExt, mono},
		{"dynamic_spread", spreadExt, mono},
		{"phase_correlation", phaseExt, stereo},
	}

	for _, tc := range cases {
		vec, err := tc.ext.Compute(tc.buf)
		if err != nil {
			t.Fatalf("%s: Compute: %v", tc.name, err)
		}

		if got, want := len(vec), len(tc.ext.Headers()); got != want {
			t.Errorf("%s: vector length %d, headers %d", tc.name, got, want)
		}
	}
}

// Pooled headers nest feature-major, statistic-minor.
func TestExtractors_PooledHeaderOrder(t *testing.T) {
	e, err := NewSpectral(testRate, WithStats(StatMean, StatMax))
	if err != nil {
		t.Fatalf("NewSpectral: %v", err)
	}

	h := e.Headers()
	if len(h) != 20 {
		t.Fatalf("Headers: got %d entries, want 20", len(h))
	}

	want := []string{"rolloff_85.mean", "rolloff_85.max", "rolloff_95.mean", "rolloff_95.max"}
	for i, w := range want {
		if h[i] != w {
			t.Errorf("header %d: got %q, want %q", i, h[i], w)
		}
	}

	if h[len(h)-1] != "energyLF.max" {
		t.Errorf("last header: got %q, want %q", h[len(h)-1], "energyLF.max")
	}
}

// Repeated computation on the same buffer is bit-identical: extractors
// hold only immutable configuration.
func TestExtractors_Idempotent(t *testing.T) {
	mono := monoSine(t, 1000, 0.5, 1)
	stereo := stereoSine(t, 1000, 0.5, 0.4, 1)

	for _, info := range Catalog() {
		e, err := info.New(testRate)
		if err != nil {
			t.Fatalf("%s: New: %v", info.Name, err)
		}

		buf := mono
		if info.Stereo {
			buf = stereo
		}

		first, err := e.Compute(buf)
		if err != nil {
			t.Fatalf("%s: first Compute: %v", info.Name, err)
		}

		second, err := e.Compute(buf)
		if err != nil {
			t.Fatalf("%s: second Compute: %v", info.Name, err)
		}

		if !sameVector(first, second) {
			t.Errorf("%s: repeated Compute differs:\n  first  %v\n  second %v", info.Name, first, second)
		}
	}
}

func TestHeaders_FreshCopy(t *testing.T) {
	e, err := NewLoudness(testRate)
	if err != nil {
		t.Fatalf("NewLoudness: %v", err)
	}

	h := e.Headers()
	h[0] = "clobbered"

	if got := e.Headers()[0]; got != "loudness_range" {
		t.Errorf("Headers after mutation: got %q, want %q", got, "loudness_range")
	}
}

func TestDefaultStats_IndependentCopies(t *testing.T) {
	a := DefaultStats()
	a[0] = "clobbered"

	b := DefaultStats()
	if b[0] != StatMean || b[1] != StatStdev {
		t.Errorf("DefaultStats after mutation: got %v, want [mean stdev]", b)
	}
}
