package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// ErrInvalidWAV indicates a stream that is not a readable WAV file.
var ErrInvalidWAV = errors.New("audio: not a valid wav file")

// DecodeWAV decodes a RIFF/WAVE stream into a Buffer, normalizing PCM
// samples by the source bit depth.
func DecodeWAV(r io.ReadSeeker) (*Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	return fromIntBuffer(pcm, int(dec.BitDepth))
}
