package audio

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrNoChannels indicates a buffer constructed without channels.
	ErrNoChannels = errors.New("audio: at least one channel required")
	// ErrChannelLength indicates channels of unequal length.
	ErrChannelLength = errors.New("audio: channels must have equal length")
	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("audio: sample rate must be positive")
	// ErrNoData indicates a decoded stream without any audio frames.
	ErrNoData = errors.New("audio: no audio data")
)

// Buffer holds decoded audio as planar float64 channels of equal length
// with samples nominally in [-1, 1], plus the sample rate they were
// captured at. A Buffer is immutable by convention: analysis code reads
// channels but does not write them.
type Buffer struct {
	data       [][]float64
	sampleRate float64
}

// NewBuffer creates a buffer from planar channel data. All channels must
// have the same length and the sample rate must be positive. The channel
// slices are retained, not copied.
func NewBuffer(channels [][]float64, sampleRate float64) (*Buffer, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, ErrInvalidRate
	}

	n := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != n {
			return nil, ErrChannelLength
		}
	}

	return &Buffer{data: channels, sampleRate: sampleRate}, nil
}

// Mono creates a single-channel buffer.
func Mono(samples []float64, sampleRate float64) (*Buffer, error) {
	return NewBuffer([][]float64{samples}, sampleRate)
}

// Stereo creates a two-channel buffer from left and right channel data.
func Stereo(left, right []float64, sampleRate float64) (*Buffer, error) {
	return NewBuffer([][]float64{left, right}, sampleRate)
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return len(b.data) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.data) == 0 {
		return 0
	}

	return len(b.data[0])
}

// Duration returns the buffer duration.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(b.Len()) / b.sampleRate * float64(time.Second))
}

// Channel returns the samples of channel i. The returned slice is shared
// with the buffer.
func (b *Buffer) Channel(i int) []float64 { return b.data[i] }

// Samples returns the planar channel data. The returned slices are shared
// with the buffer.
func (b *Buffer) Samples() [][]float64 { return b.data }

// MixMono returns a mono mixdown, the per-sample mean across channels.
// Single-channel buffers return a copy of the channel.
func (b *Buffer) MixMono() []float64 {
	n := b.Len()
	out := make([]float64, n)

	if len(b.data) == 1 {
		copy(out, b.data[0])
		return out
	}

	scale := 1.0 / float64(len(b.data))
	for i := range out {
		sum := 0.0
		for _, ch := range b.data {
			sum += ch[i]
		}

		out[i] = sum * scale
	}

	return out
}

// Interleaved returns the samples interleaved frame by frame.
func (b *Buffer) Interleaved() []float64 {
	channels := len(b.data)
	n := b.Len()
	out := make([]float64, n*channels)

	for i := range n {
		for c, ch := range b.data {
			out[i*channels+c] = ch[i]
		}
	}

	return out
}
