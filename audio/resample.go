package audio

import (
	"fmt"

	"github.com/cwbudde/algo-audiofeatures/dsp/resample"
)

// Resampled converts the buffer to the target sample rate using the
// polyphase rational resampler, one pass per channel. A buffer already
// at the target rate is returned unchanged.
func Resampled(b *Buffer, targetRate float64) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidRate
	}

	if targetRate == b.sampleRate {
		return b, nil
	}

	r, err := resample.NewForRates(b.sampleRate, targetRate)
	if err != nil {
		return nil, fmt.Errorf("designing resampler: %w", err)
	}

	out := make([][]float64, b.Channels())
	for c := range out {
		r.Reset()
		out[c] = r.Process(b.Channel(c))
	}

	return NewBuffer(out, targetRate)
}
