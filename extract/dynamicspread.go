package extract

import (
	"math"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/frame"
	r128 "github.com/cwbudde/algo-audiofeatures/measure/loudness"
	timestats "github.com/cwbudde/algo-audiofeatures/stats/time"
)

const defaultDynamicFrameSize = 2048

// DynamicSpread measures loudness variability: the Vickers loudness of
// each non-overlapping frame, reduced to the mean absolute deviation from
// the mean frame loudness. A constant-amplitude signal scores near zero.
type DynamicSpread struct {
	sampleRate float64
	frameSize  int
}

// NewDynamicSpread creates a dynamic spread extractor. The frame size
// defaults to 2048 samples and can be overridden with [WithFrameSize].
func NewDynamicSpread(sampleRate float64, opts ...Option) (*DynamicSpread, error) {
	cfg := newConfig(opts...)
	if !cfg.frameSizeSet {
		cfg.frameSize = defaultDynamicFrameSize
	}

	if err := cfg.validate("dynamic_spread", sampleRate); err != nil {
		return nil, err
	}

	if err := cfg.validateFrameSize("dynamic_spread"); err != nil {
		return nil, err
	}

	return &DynamicSpread{sampleRate: sampleRate, frameSize: cfg.frameSize}, nil
}

// Headers implements [Extractor].
func (e *DynamicSpread) Headers() []string {
	return []string{"dynamic_spread"}
}

// Compute implements [Extractor]. Multichannel buffers are mixed to mono;
// a signal shorter than one frame yields NaN.
func (e *DynamicSpread) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("dynamic_spread", buf, 0); err != nil {
		return nil, err
	}

	frames, err := frame.Split(monoSignal(buf), e.frameSize, e.frameSize)
	if err != nil {
		return nil, err
	}

	if len(frames) == 0 {
		return []float64{math.NaN()}, nil
	}

	vickers := r128.NewVickers(e.sampleRate)

	loudness := make([]float64, len(frames))
	for i, f := range frames {
		// Frames are contiguous, so the weighting filter carries its
		// state from one frame into the next.
		loudness[i] = vickers.Loudness(f)
	}

	return []float64{timestats.MeanAbsDeviation(loudness)}, nil
}
