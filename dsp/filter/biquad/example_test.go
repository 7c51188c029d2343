package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-audiofeatures/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	// One-pole smoother: y[n] = 0.5*x[n] + 0.5*y[n-1].
	s := biquad.NewSection(biquad.Coefficients{B0: 0.5, A1: -0.5})

	// Feed a unit step and watch the output settle.
	for i := range 4 {
		fmt.Printf("y[%d] = %.4f\n", i, s.ProcessSample(1))
	}
	// Output:
	// y[0] = 0.5000
	// y[1] = 0.7500
	// y[2] = 0.8750
	// y[3] = 0.9375
}

func ExampleChain_ProcessSample() {
	// Two cascaded two-tap averages, an FIR with taps 0.25 0.5 0.25.
	avg := biquad.Coefficients{B0: 0.5, B1: 0.5}
	chain := biquad.NewChain([]biquad.Coefficients{avg, avg})

	fmt.Printf("order %d, sections %d\n", chain.Order(), chain.NumSections())
	for i := range 4 {
		fmt.Printf("y[%d] = %.2f\n", i, chain.ProcessSample(1))
	}
	// Output:
	// order 4, sections 2
	// y[0] = 0.25
	// y[1] = 0.75
	// y[2] = 1.00
	// y[3] = 1.00
}

func ExampleCoefficients_MagnitudeDB() {
	avg := biquad.Coefficients{B0: 0.5, B1: 0.5}

	const sr = 48000.0
	for _, freq := range []float64{0, 6000, 12000, 18000} {
		fmt.Printf("%5.0f Hz: %.2f dB\n", freq, avg.MagnitudeDB(freq, sr))
	}
	// Output:
	//     0 Hz: 0.00 dB
	//  6000 Hz: -0.69 dB
	// 12000 Hz: -3.01 dB
	// 18000 Hz: -8.34 dB
}

func ExampleCoefficients_Stable() {
	inside := biquad.Coefficients{B0: 1, A1: -1.4, A2: 0.53}
	outside := biquad.Coefficients{B0: 1, A1: -2.4, A2: 1.5}

	fmt.Println(inside.Stable(), outside.Stable())
	// Output:
	// true false
}
