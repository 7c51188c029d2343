package audio

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// DecodeVorbis decodes an Ogg Vorbis stream into a Buffer.
func DecodeVorbis(r io.Reader) (*Buffer, error) {
	raw, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ogg vorbis data: %w", err)
	}

	channels := format.Channels
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(raw) / channels
	if frames == 0 {
		return nil, ErrNoData
	}

	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}

	for i := range frames {
		for c := range channels {
			data[c][i] = float64(raw[i*channels+c])
		}
	}

	return NewBuffer(data, float64(format.SampleRate))
}
