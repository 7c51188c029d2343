package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofeatures/dsp/signal"
	"github.com/cwbudde/algo-audiofeatures/internal/testutil"
)

func TestNewRational_ReducesRatio(t *testing.T) {
	r, err := NewRational(88200, 44100)
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}

	up, down := r.Ratio()
	if up != 2 || down != 1 {
		t.Fatalf("Ratio() = %d/%d, want 2/1", up, down)
	}
}

func TestNewForRates_CDToDAT(t *testing.T) {
	r, err := NewForRates(44100, 48000)
	if err != nil {
		t.Fatalf("NewForRates failed: %v", err)
	}

	up, down := r.Ratio()
	if up != 160 || down != 147 {
		t.Fatalf("Ratio() = %d/%d, want 160/147", up, down)
	}
}

func TestResample_OutputLengths(t *testing.T) {
	in := signal.Sine(441, 44100, 1, 1000)

	up, err := Resample(in, 4, 1)
	if err != nil {
		t.Fatalf("upsample failed: %v", err)
	}
	if len(up) != 4000 {
		t.Fatalf("4x upsample of 1000 samples gave %d, want 4000", len(up))
	}

	down, err := Resample(in, 1, 2)
	if err != nil {
		t.Fatalf("downsample failed: %v", err)
	}
	if len(down) != 500 {
		t.Fatalf("2x downsample of 1000 samples gave %d, want 500", len(down))
	}
}

func TestResample_DCPreserved(t *testing.T) {
	out, err := Resample(signal.Ones(1024), 2, 1)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	// Skip the filter transient at both edges.
	for i := 128; i < len(out)-128; i++ {
		if math.Abs(out[i]-1) > 0.01 {
			t.Fatalf("out[%d] = %v, want 1 within 0.01", i, out[i])
		}
	}
}

func TestResample_TonePassesThrough(t *testing.T) {
	// A 997 Hz tone sits deep inside the passband of the 44.1 to 48 kHz
	// conversion, so its RMS must survive the trip.
	in := signal.Sine(997, 44100, 0.5, 8820)

	r, err := NewForRates(44100, 48000)
	if err != nil {
		t.Fatalf("NewForRates failed: %v", err)
	}
	out := r.Process(in)

	var sum float64
	interior := out[1000 : len(out)-1000]
	for _, v := range interior {
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(interior)))

	want := 0.5 / math.Sqrt2
	if math.Abs(rms-want) > 0.005 {
		t.Fatalf("RMS after conversion = %v, want %v within 0.005", rms, want)
	}
}

func TestProcess_StreamingMatchesOneShot(t *testing.T) {
	in := signal.Sine(440, 44100, 0.8, 3000)

	whole, err := NewForRates(44100, 48000)
	if err != nil {
		t.Fatalf("NewForRates failed: %v", err)
	}
	want := whole.Process(in)

	chunked, err := NewForRates(44100, 48000)
	if err != nil {
		t.Fatalf("NewForRates failed: %v", err)
	}

	var got []float64
	for _, chunk := range [][]float64{in[:700], in[700:1900], in[1900:]} {
		got = append(got, chunked.Process(chunk)...)
	}

	// Chunk boundaries must not leak into the output at all.
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestReset(t *testing.T) {
	in := signal.Sine(1000, 48000, 1, 512)

	r, err := NewRational(3, 2)
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}

	first := r.Process(in)
	r.Reset()
	second := r.Process(in)

	diff, err := testutil.MaxAbsDiff(first, second)
	if err != nil {
		t.Fatalf("output lengths differ after Reset: %v", err)
	}
	if diff != 0 {
		t.Fatalf("output differs after Reset: max abs diff %v", diff)
	}
}

func TestQualityOverrides(t *testing.T) {
	// Longer filters raise the per-branch tap count.
	fast, err := NewRational(2, 1, WithQuality(QualityFast))
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}
	best, err := NewRational(2, 1, WithQuality(QualityBest))
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}
	if len(fast.phases[0]) >= len(best.phases[0]) {
		t.Fatalf("fast branch %d taps, best %d; want fast < best",
			len(fast.phases[0]), len(best.phases[0]))
	}

	custom, err := NewRational(2, 1, WithTapsPerPhase(48), WithKaiserBeta(8))
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}
	if len(custom.phases[0]) != 48 {
		t.Fatalf("custom branch has %d taps, want 48", len(custom.phases[0]))
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := NewRational(0, 1); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("NewRational(0, 1) error = %v, want ErrInvalidRatio", err)
	}
	if _, err := NewRational(4, -2); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("NewRational(4, -2) error = %v, want ErrInvalidRatio", err)
	}
	if _, err := NewForRates(-1, 48000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewForRates(-1, 48000) error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewForRates(44100, math.NaN()); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("NewForRates(44100, NaN) error = %v, want ErrInvalidRate", err)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	r, err := NewRational(2, 1)
	if err != nil {
		t.Fatalf("NewRational failed: %v", err)
	}
	if out := r.Process(nil); len(out) != 0 {
		t.Fatalf("Process(nil) returned %d samples", len(out))
	}
}
