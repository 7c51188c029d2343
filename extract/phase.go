package extract

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/dsp/frame"
)

// PhaseCorrelation reports the Pearson correlation between the left and
// right channels: +1 for identical channels, −1 for opposite polarity,
// near 0 for unrelated material. By default one scalar over the whole
// signal; with [WithFrameSize] the correlation is computed per contiguous
// slice and aggregated. Slices keep the trailing remainder, so every
// sample contributes. A constant channel yields NaN (0/0).
type PhaseCorrelation struct {
	frameSize int // 0 selects whole-signal mode
	stats     []string
}

// NewPhaseCorrelation creates a phase correlation extractor for stereo
// signals.
func NewPhaseCorrelation(sampleRate float64, opts ...Option) (*PhaseCorrelation, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate("phase_correlation", sampleRate); err != nil {
		return nil, err
	}

	e := &PhaseCorrelation{stats: cfg.stats}

	if cfg.frameSizeSet {
		if err := cfg.validateFrameSize("phase_correlation"); err != nil {
			return nil, err
		}

		e.frameSize = cfg.frameSize
	}

	return e, nil
}

// Headers implements [Extractor].
func (e *PhaseCorrelation) Headers() []string {
	if e.frameSize == 0 {
		return []string{"phase_correlation"}
	}

	return poolHeaders([]string{"phase_correlation"}, e.stats)
}

// Compute implements [Extractor]. The buffer must be stereo.
func (e *PhaseCorrelation) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("phase_correlation", buf, 2); err != nil {
		return nil, err
	}

	left, right := buf.Channel(0), buf.Channel(1)

	if e.frameSize == 0 {
		return []float64{stat.Correlation(left, right, nil)}, nil
	}

	leftChunks, err := frame.Chunks(left, e.frameSize)
	if err != nil {
		return nil, err
	}

	rightChunks, err := frame.Chunks(right, e.frameSize)
	if err != nil {
		return nil, err
	}

	pool := NewStatPool()
	for i := range leftChunks {
		pool.Add("phase_correlation", stat.Correlation(leftChunks[i], rightChunks[i], nil))
	}

	return aggregate(pool, []string{"phase_correlation"}, e.stats), nil
}
