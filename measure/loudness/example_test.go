package loudness_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofeatures/measure/loudness"
)

func ExampleMeter() {
	fs := 48000.0
	m := loudness.NewMeter(
		loudness.WithSampleRate(fs),
		loudness.WithChannels(1),
	)

	// Generate 4 seconds of 1000Hz sine at 0.5 amplitude (-6.02 dBFS)
	// mean square = (0.5^2)/2 = 0.125
	// K-weighted mean square (at 1000Hz) approx 0.125 * 1.1668 = 0.14585
	// LUFS = -0.691 + 10*log10(0.14585) = -0.691 - 8.36 = -9.05 LUFS
	n := int(fs * 4)

	sig := make([]float64, n)
	for i := range sig {
		sig[i] = 0.5 * math.Sin(2*math.Pi*1000.0/fs*float64(i))
	}

	m.ProcessBlock(sig)

	fmt.Printf("Momentary: %.0f LUFS\n", m.Momentary())
	fmt.Printf("Short-term: %.0f LUFS\n", m.ShortTerm())
	fmt.Printf("Integrated: %.0f LUFS\n", m.Integrated())

	// Output:
	// Momentary: -9 LUFS
	// Short-term: -9 LUFS
	// Integrated: -9 LUFS
}

func ExampleAnalyze() {
	fs := 48000.0
	n := int(fs * 4)

	sig := make([]float64, n)
	for i := range sig {
		sig[i] = 0.5 * math.Sin(2*math.Pi*1000.0/fs*float64(i))
	}

	// Coherent stereo measures 3 dB above the mono signal.
	res, err := loudness.Analyze([][]float64{sig, sig}, fs)
	if err != nil {
		panic(err)
	}

	fmt.Printf("blocks: %d\n", len(res.Momentary))
	fmt.Printf("integrated: %.0f LUFS\n", res.Integrated)

	// Output:
	// blocks: 40
	// integrated: -6 LUFS
}
