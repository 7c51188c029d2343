package spectrum

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-audiofeatures/dsp/window"
)

var benchSizes = []int{64, 256, 1024, 4096, 16384}

func benchComplexBins(n int) []complex128 {
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(float64(i)/10, float64(n-i)/10)
	}

	return in
}

func BenchmarkMagnitude(b *testing.B) {
	for _, n := range benchSizes {
		in := benchComplexBins(n)

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	for _, n := range benchSizes {
		in := benchComplexBins(n)

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Power(in)
			}
		})
	}
}

func BenchmarkMagnitudeFromParts(b *testing.B) {
	for _, n := range benchSizes {
		re := make([]float64, n)
		im := make([]float64, n)
		dst := make([]float64, n)
		for i := range re {
			re[i] = float64(i) / 10
			im[i] = float64(n-i) / 10
		}

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 16)) // re+im = 16 bytes per element
			b.ResetTimer()

			for range b.N {
				MagnitudeFromParts(dst, re, im)
			}
		})
	}
}

func BenchmarkPowerFromParts(b *testing.B) {
	for _, n := range benchSizes {
		re := make([]float64, n)
		im := make([]float64, n)
		dst := make([]float64, n)
		for i := range re {
			re[i] = float64(i) / 10
			im[i] = float64(n-i) / 10
		}

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 16)) // re+im = 16 bytes per element
			b.ResetTimer()

			for range b.N {
				PowerFromParts(dst, re, im)
			}
		})
	}
}

func BenchmarkAnalyzerMagnitude(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		a, err := NewAnalyzer(n, n/2, window.TypeHann)
		if err != nil {
			b.Fatal(err)
		}

		frame := make([]float64, n)
		for i := range frame {
			frame[i] = float64(i%32) / 32
		}

		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := a.Magnitude(frame); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
