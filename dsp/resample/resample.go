package resample

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRatio indicates a non-positive up or down factor.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates a non-positive or NaN sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// Quality selects the anti-aliasing filter trade-off.
type Quality int

const (
	// QualityBalanced is the default trade-off.
	QualityBalanced Quality = iota
	// QualityFast uses a short filter and favors throughput.
	QualityFast
	// QualityBest uses a long filter for maximum stopband rejection.
	QualityBest
)

// Profile holds the filter design parameters behind a quality mode.
type Profile struct {
	TapsPerPhase int
	CutoffScale  float64
	KaiserBeta   float64
}

// QualityProfile returns the design parameters for quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0}
	case QualityBest:
		return Profile{TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0}
	default:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	kaiserBeta   float64
}

// Option configures the resampler.
type Option func(*config)

// WithQuality selects a predefined anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides the filter length per polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta of the quality mode.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta > 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// finalized fills unset overrides from the quality profile.
func (c config) finalized() config {
	p := QualityProfile(c.quality)
	if c.tapsPerPhase <= 0 {
		c.tapsPerPhase = p.TapsPerPhase
	}
	if c.kaiserBeta <= 0 {
		c.kaiserBeta = p.KaiserBeta
	}

	return c
}

// Resampler performs rational sample-rate conversion with a polyphase
// FIR filter. It is streamable: Process can be called repeatedly with
// consecutive blocks and produces the same samples as one whole-signal
// call.
type Resampler struct {
	up   int
	down int

	phases       [][]float64
	longestPhase int

	phase      int
	inputIndex int
	totalIn    int
	history    []float64
}

// NewRational creates a resampler for the reduced ratio up/down.
func NewRational(up, down int, opts ...Option) (*Resampler, error) {
	if up <= 0 || down <= 0 {
		return nil, ErrInvalidRatio
	}

	g := gcd(up, down)
	up /= g
	down /= g

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	phases, longest, err := designPolyphase(up, down, cfg.finalized())
	if err != nil {
		return nil, err
	}

	return &Resampler{
		up:           up,
		down:         down,
		phases:       phases,
		longestPhase: longest,
		history:      make([]float64, 0, max(0, longest-1)),
	}, nil
}

// NewForRates creates a resampler whose ratio approximates
// outRate/inRate as a reduced fraction.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) {
		return nil, ErrInvalidRate
	}

	up, down := approximateRatio(outRate/inRate, maxRatioDenominator)

	return NewRational(up, down, opts...)
}

// Resample converts input by the ratio up/down in one shot.
func Resample(input []float64, up, down int, opts ...Option) ([]float64, error) {
	r, err := NewRational(up, down, opts...)
	if err != nil {
		return nil, err
	}

	return r.Process(input), nil
}

// Ratio returns the reduced up/down conversion factors.
func (r *Resampler) Ratio() (up, down int) {
	return r.up, r.down
}

// Reset clears the filter state so the resampler can start a new
// stream.
func (r *Resampler) Reset() {
	r.phase = 0
	r.inputIndex = 0
	r.totalIn = 0
	r.history = r.history[:0]
}

// Process converts one block and keeps the filter state for the next.
// Samples before the start of the stream count as zero.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}

	out := make([]float64, 0, r.outputLen(len(input)))

	work := make([]float64, len(r.history)+len(input))
	copy(work, r.history)
	copy(work[len(r.history):], input)

	baseIndex := r.totalIn - len(r.history)
	lastAvail := r.totalIn + len(input) - 1

	for r.inputIndex <= lastAvail {
		taps := r.phases[r.phase]

		var y float64
		for k, c := range taps {
			idx := r.inputIndex - k
			if idx < baseIndex || idx > lastAvail {
				continue
			}
			y += c * work[idx-baseIndex]
		}

		out = append(out, y)

		r.phase += r.down
		r.inputIndex += r.phase / r.up
		r.phase %= r.up
	}

	r.totalIn += len(input)

	keep := max(0, r.longestPhase-1)
	if keep > len(work) {
		keep = len(work)
	}
	r.history = append(r.history[:0], work[len(work)-keep:]...)

	return out
}

// outputLen counts the samples the next Process call will emit for
// inputLen more input samples.
func (r *Resampler) outputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}

	lastAvail := r.totalIn + inputLen - 1
	i := r.inputIndex
	phase := r.phase

	count := 0
	for i <= lastAvail {
		count++
		phase += r.down
		i += phase / r.up
		phase %= r.up
	}

	return count
}
