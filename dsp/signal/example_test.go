package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofeatures/dsp/signal"
)

func ExampleSine() {
	// 250 Hz at 1 kHz completes one cycle every four samples.
	x := signal.Sine(250, 1000, 1, 5)
	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleImpulse() {
	fmt.Println(signal.Impulse(5, 2))

	// Output:
	// [0 0 1 0 0]
}
