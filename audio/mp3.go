package audio

import (
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// DecodeMP3 decodes an MPEG-1 Layer III stream into a Buffer. go-mp3
// always outputs 16-bit little-endian stereo PCM regardless of the
// source channel layout.
func DecodeMP3(r io.Reader) (*Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 header: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 data: %w", err)
	}

	// 2 channels x 2 bytes per frame.
	frames := len(raw) / 4
	if frames == 0 {
		return nil, ErrNoData
	}

	left := make([]float64, frames)
	right := make([]float64, frames)

	for i := range frames {
		left[i] = float64(pcm16(raw[4*i], raw[4*i+1])) / 32768.0
		right[i] = float64(pcm16(raw[4*i+2], raw[4*i+3])) / 32768.0
	}

	return Stereo(left, right, float64(dec.SampleRate()))
}

func pcm16(low, high byte) int16 {
	return int16(uint16(low) | uint16(high)<<8)
}
