package extract

import (
	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/frame"
	timestats "github.com/cwbudde/algo-audiofeatures/stats/time"
)

// crest returns peak / RMS without guarding the silent case, so an
// all-zero signal yields NaN (0/0) rather than a masked zero.
func crest(signal []float64) float64 {
	return timestats.Peak(signal) / timestats.RMS(signal)
}

// CrestFactor measures the peak-to-RMS ratio. By default it reports one
// scalar over the whole signal; with [WithFrameSize] it computes the
// ratio per non-overlapping frame and aggregates the pooled values.
type CrestFactor struct {
	frameSize int // 0 selects whole-signal mode
	stats     []string
}

// NewCrestFactor creates a crest factor extractor.
func NewCrestFactor(sampleRate float64, opts ...Option) (*CrestFactor, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate("crest_factor", sampleRate); err != nil {
		return nil, err
	}

	e := &CrestFactor{stats: cfg.stats}

	if cfg.frameSizeSet {
		if err := cfg.validateFrameSize("crest_factor"); err != nil {
			return nil, err
		}

		e.frameSize = cfg.frameSize
	}

	return e, nil
}

// Headers implements [Extractor].
func (e *CrestFactor) Headers() []string {
	if e.frameSize == 0 {
		return []string{"crest_factor"}
	}

	return poolHeaders([]string{"crest_factor"}, e.stats)
}

// Compute implements [Extractor]. Multichannel buffers are mixed to mono
// first. In framed mode a trailing partial frame is dropped; a signal
// shorter than one frame pools nothing and yields NaN per statistic.
func (e *CrestFactor) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("crest_factor", buf, 0); err != nil {
		return nil, err
	}

	sig := monoSignal(buf)

	if e.frameSize == 0 {
		return []float64{crest(sig)}, nil
	}

	frames, err := frame.Split(sig, e.frameSize, e.frameSize)
	if err != nil {
		return nil, err
	}

	pool := NewStatPool()
	for _, f := range frames {
		pool.Add("crest_factor", crest(f))
	}

	return aggregate(pool, []string{"crest_factor"}, e.stats), nil
}
