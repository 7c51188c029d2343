// Package frame slices signals into analysis frames.
//
// Frames are views into the input signal, not copies. Callers that modify
// frame contents (windowing in place, for example) must copy first.
package frame

import (
	"errors"
	"fmt"
)

var (
	errInvalidSize = errors.New("frame size must be > 0")
	errInvalidHop  = errors.New("hop size must be > 0")
)

func validate(size, hop int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", errInvalidSize, size)
	}

	if hop <= 0 {
		return fmt.Errorf("%w: %d", errInvalidHop, hop)
	}

	return nil
}

// Count returns the number of full frames of the given size that fit into a
// signal of length n when advancing by hop samples.
func Count(n, size, hop int) int {
	if n < size || size <= 0 || hop <= 0 {
		return 0
	}

	return (n-size)/hop + 1
}

// Split slices the signal into frames of the given size starting at offset 0
// and advancing by hop samples. A trailing segment shorter than size is
// dropped. A signal shorter than one frame yields no frames.
func Split(signal []float64, size, hop int) ([][]float64, error) {
	if err := validate(size, hop); err != nil {
		return nil, err
	}

	count := Count(len(signal), size, hop)
	if count == 0 {
		return nil, nil
	}

	frames := make([][]float64, count)
	for i := range frames {
		off := i * hop
		frames[i] = signal[off : off+size]
	}

	return frames, nil
}

// Chunks slices the signal into adjacent non-overlapping segments of the
// given size. Unlike [Split], a trailing segment shorter than size is kept,
// so every sample of the signal appears in exactly one chunk.
func Chunks(signal []float64, size int) ([][]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", errInvalidSize, size)
	}

	if len(signal) == 0 {
		return nil, nil
	}

	count := (len(signal) + size - 1) / size
	chunks := make([][]float64, 0, count)

	for off := 0; off < len(signal); off += size {
		end := off + size
		if end > len(signal) {
			end = len(signal)
		}

		chunks = append(chunks, signal[off:end])
	}

	return chunks, nil
}
