package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
)

// ErrUnsupportedFormat indicates a file extension no decoder handles.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// LoadConfig holds the post-decode processing options applied by Load.
type LoadConfig struct {
	// TargetRate resamples the decoded audio to this rate when positive.
	TargetRate float64
	// MixToMono collapses the decoded channels to a single mono channel.
	MixToMono bool
}

// LoadOption configures Load.
type LoadOption func(*LoadConfig)

// WithTargetRate resamples the decoded audio to the given rate in Hz.
func WithTargetRate(rate float64) LoadOption {
	return func(cfg *LoadConfig) {
		if rate > 0 {
			cfg.TargetRate = rate
		}
	}
}

// WithMonoMixdown collapses the decoded audio to mono before any
// resampling.
func WithMonoMixdown() LoadOption {
	return func(cfg *LoadConfig) {
		cfg.MixToMono = true
	}
}

// Load decodes an audio file into a Buffer, dispatching on the file
// extension. Supported: .wav, .aif, .aiff, .mp3, .ogg, .oga.
func Load(path string, opts ...LoadOption) (*Buffer, error) {
	var cfg LoadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var decode func(*os.File) (*Buffer, error)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decode = func(f *os.File) (*Buffer, error) { return DecodeWAV(f) }
	case ".aif", ".aiff":
		decode = func(f *os.File) (*Buffer, error) { return DecodeAIFF(f) }
	case ".mp3":
		decode = func(f *os.File) (*Buffer, error) { return DecodeMP3(f) }
	case ".ogg", ".oga":
		decode = func(f *os.File) (*Buffer, error) { return DecodeVorbis(f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if cfg.MixToMono && buf.Channels() > 1 {
		buf, err = Mono(buf.MixMono(), buf.SampleRate())
		if err != nil {
			return nil, err
		}
	}

	if cfg.TargetRate > 0 {
		buf, err = Resampled(buf, cfg.TargetRate)
		if err != nil {
			return nil, fmt.Errorf("resampling %s: %w", path, err)
		}
	}

	return buf, nil
}

// IsSupported reports whether Load handles the extension of path.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".aif", ".aiff", ".mp3", ".ogg", ".oga":
		return true
	default:
		return false
	}
}

// fromIntBuffer deinterleaves a go-audio PCM buffer into planar channels
// normalized by the source bit depth.
func fromIntBuffer(buf *goaudio.IntBuffer, bitDepth int) (*Buffer, error) {
	if buf == nil || len(buf.Data) == 0 {
		return nil, ErrNoData
	}

	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}

	var maxVal float64

	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, ErrNoData
	}

	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}

	for i := range frames {
		for c := range channels {
			data[c][i] = float64(buf.Data[i*channels+c]) / maxVal
		}
	}

	return NewBuffer(data, float64(buf.Format.SampleRate))
}
