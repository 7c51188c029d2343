package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

// ErrInvalidAIFF indicates a stream that is not a readable AIFF file.
var ErrInvalidAIFF = errors.New("audio: not a valid aiff file")

// DecodeAIFF decodes an AIFF stream into a Buffer, normalizing PCM
// samples by the source bit depth.
func DecodeAIFF(r io.ReadSeeker) (*Buffer, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidAIFF
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	return fromIntBuffer(pcm, int(dec.BitDepth))
}
