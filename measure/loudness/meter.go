package loudness

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-audiofeatures/dsp/core"
	"github.com/cwbudde/algo-audiofeatures/dsp/filter/biquad"
	"github.com/cwbudde/algo-audiofeatures/dsp/filter/design"
)

const (
	// K-weighting filter parameters from BS.1770.
	kWeightingShelfFreq = 1500.0
	kWeightingShelfGain = 4.0

	kWeightingHpfFreq = 38.0

	// Integration window durations in seconds.
	momentaryDuration = 0.4
	shortTermDuration = 3.0

	// Gating parameters for integrated loudness (BS.1770-4).
	absThreshold = -70.0
	relThreshold = -10.0

	// Gating and percentile parameters for loudness range (EBU Tech 3342).
	rangeRelThreshold   = -20.0
	rangeLowPercentile  = 0.10
	rangeHighPercentile = 0.95
)

var (
	// ErrNoChannels indicates an empty channel set passed to Analyze.
	ErrNoChannels = errors.New("loudness: at least one channel required")
	// ErrChannelLength indicates channels of unequal length.
	ErrChannelLength = errors.New("loudness: channels must have equal length")
	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("loudness: sample rate must be positive")
)

// Meter implements EBU R128 / ITU-R BS.1770 loudness metering.
//
// Beyond the instantaneous Momentary and ShortTerm readouts, the meter
// captures both loudness series on a fixed grid (100 ms by default): value
// k of a series is the window that starts at k times the capture interval,
// so the first window is anchored at the start of the signal. Call Flush
// after the last sample to complete the windows that extend past the end
// of the signal with zero padding; both series then cover every grid
// position inside the signal and have equal length.
type Meter struct {
	sampleRate float64
	channels   int

	// K-weighting filters per channel
	shelfFilters []*biquad.Section
	hpfFilters   []*biquad.Section

	// History for integration (sliding window)
	momWindowSamples   int
	shortWindowSamples int
	momHistory         [][]float64 // Squares of samples
	shortHistory       [][]float64 // Squares of samples
	momWriteIdx        int
	shortWriteIdx      int

	// Running sums for sliding windows
	momRunningSums   []float64
	shortRunningSums []float64

	// Series capture state: linear mean-square power per grid position.
	// processed counts samples consumed including padding, signalSamples
	// excludes padding.
	captureHop      int
	processed       int64
	signalSamples   int64
	momentaryPowers []float64
	shortTermPowers []float64

	// Peak tracking (sample peaks; see TruePeakDetector for inter-sample peaks)
	samplePeak []float64
}

// NewMeter creates a new loudness meter with the given options.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)

	meter := &Meter{
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		captureHop: max(int(math.Round(cfg.CaptureInterval*cfg.SampleRate)), 1),
	}

	meter.reconfigure()

	return meter
}

func (m *Meter) reconfigure() {
	m.shelfFilters = make([]*biquad.Section, m.channels)
	m.hpfFilters = make([]*biquad.Section, m.channels)

	q := 1.0 / math.Sqrt(2)
	shelfCoeffs := design.HighShelf(kWeightingShelfFreq, kWeightingShelfGain, q, m.sampleRate)
	hpfCoeffs := design.Highpass(kWeightingHpfFreq, q, m.sampleRate)

	for i := range m.channels {
		m.shelfFilters[i] = biquad.NewSection(shelfCoeffs)
		m.hpfFilters[i] = biquad.NewSection(hpfCoeffs)
	}

	m.momWindowSamples = int(math.Round(momentaryDuration * m.sampleRate))
	m.shortWindowSamples = int(math.Round(shortTermDuration * m.sampleRate))

	m.momHistory = make([][]float64, m.channels)

	m.shortHistory = make([][]float64, m.channels)
	for i := range m.channels {
		m.momHistory[i] = make([]float64, m.momWindowSamples)
		m.shortHistory[i] = make([]float64, m.shortWindowSamples)
	}

	m.momRunningSums = make([]float64, m.channels)
	m.shortRunningSums = make([]float64, m.channels)
	m.samplePeak = make([]float64, m.channels)

	m.Reset()
}

// Reset clears all metering state, series, and peak values.
func (m *Meter) Reset() {
	for i := range m.channels {
		m.shelfFilters[i].Reset()
		m.hpfFilters[i].Reset()

		for j := range m.momHistory[i] {
			m.momHistory[i][j] = 0
		}

		for j := range m.shortHistory[i] {
			m.shortHistory[i][j] = 0
		}

		m.momRunningSums[i] = 0
		m.shortRunningSums[i] = 0
		m.samplePeak[i] = 0
	}

	m.momWriteIdx = 0
	m.shortWriteIdx = 0
	m.processed = 0
	m.signalSamples = 0
	m.momentaryPowers = nil
	m.shortTermPowers = nil
}

// ProcessSample processes a single multi-channel sample (frame).
func (m *Meter) ProcessSample(samples []float64) {
	if len(samples) < m.channels {
		return
	}

	m.process(samples, false)
}

// ProcessBlock processes a block of interleaved samples.
func (m *Meter) ProcessBlock(block []float64) {
	for i := 0; i+m.channels <= len(block); i += m.channels {
		m.process(block[i:i+m.channels], false)
	}
}

func (m *Meter) process(samples []float64, padding bool) {
	for i := range m.channels {
		// 1. K-Weighting
		val := m.shelfFilters[i].ProcessSample(samples[i])
		val = m.hpfFilters[i].ProcessSample(val)

		// 2. Peak tracking
		absVal := math.Abs(samples[i])
		if absVal > m.samplePeak[i] {
			m.samplePeak[i] = absVal
		}

		sq := val * val

		// 3. Momentary integration (sliding window)
		oldMom := m.momHistory[i][m.momWriteIdx]
		m.momHistory[i][m.momWriteIdx] = sq

		m.momRunningSums[i] += sq - oldMom
		if m.momRunningSums[i] < 0 {
			m.momRunningSums[i] = 0
		}

		// 4. Short-term integration (sliding window)
		oldShort := m.shortHistory[i][m.shortWriteIdx]
		m.shortHistory[i][m.shortWriteIdx] = sq

		m.shortRunningSums[i] += sq - oldShort
		if m.shortRunningSums[i] < 0 {
			m.shortRunningSums[i] = 0
		}
	}

	m.momWriteIdx = (m.momWriteIdx + 1) % m.momWindowSamples
	m.shortWriteIdx = (m.shortWriteIdx + 1) % m.shortWindowSamples

	m.processed++
	if !padding {
		m.signalSamples++
	}

	// Capture a series value whenever a grid-aligned window completes:
	// window k spans [k*hop, k*hop + windowSamples).
	if past := m.processed - int64(m.momWindowSamples); past >= 0 && past%int64(m.captureHop) == 0 {
		m.momentaryPowers = append(m.momentaryPowers, m.windowPower(m.momRunningSums, m.momWindowSamples))
	}

	if past := m.processed - int64(m.shortWindowSamples); past >= 0 && past%int64(m.captureHop) == 0 {
		m.shortTermPowers = append(m.shortTermPowers, m.windowPower(m.shortRunningSums, m.shortWindowSamples))
	}
}

func (m *Meter) windowPower(runningSums []float64, windowSamples int) float64 {
	sum := 0.0
	for i := range m.channels {
		sum += runningSums[i] / float64(windowSamples)
	}

	return sum
}

// Flush pads the input with zeros until every series window that starts
// inside the signal has completed, then trims the series to exactly one
// value per grid position inside the signal. Both series have equal
// length afterwards.
func (m *Meter) Flush() {
	target := m.gridPositions()

	zero := make([]float64, m.channels)
	for int64(len(m.momentaryPowers)) < target || int64(len(m.shortTermPowers)) < target {
		m.process(zero, true)
	}

	if int64(len(m.momentaryPowers)) > target {
		m.momentaryPowers = m.momentaryPowers[:target]
	}

	if int64(len(m.shortTermPowers)) > target {
		m.shortTermPowers = m.shortTermPowers[:target]
	}
}

// gridPositions returns the number of capture-grid positions that fall
// inside the signal.
func (m *Meter) gridPositions() int64 {
	if m.signalSamples == 0 {
		return 0
	}

	return (m.signalSamples + int64(m.captureHop) - 1) / int64(m.captureHop)
}

// Momentary returns the current momentary loudness in LUFS.
func (m *Meter) Momentary() float64 {
	return toLUFS(m.windowPower(m.momRunningSums, m.momWindowSamples))
}

// ShortTerm returns the current short-term loudness in LUFS.
func (m *Meter) ShortTerm() float64 {
	return toLUFS(m.windowPower(m.shortRunningSums, m.shortWindowSamples))
}

// MomentarySeries returns the captured momentary loudness series in LUFS.
func (m *Meter) MomentarySeries() []float64 {
	return toLUFSSeries(m.momentaryPowers)
}

// ShortTermSeries returns the captured short-term loudness series in LUFS.
func (m *Meter) ShortTermSeries() []float64 {
	return toLUFSSeries(m.shortTermPowers)
}

// Integrated returns the gated integrated loudness in LUFS, computed from
// the captured momentary powers per BS.1770-4: blocks below -70 LUFS are
// discarded, then blocks more than 10 LU below the mean of the remainder.
func (m *Meter) Integrated() float64 {
	if len(m.momentaryPowers) == 0 {
		return math.Inf(-1)
	}

	// 1. Absolute gating
	var absGated []float64

	absGatedSum := 0.0

	for _, b := range m.momentaryPowers {
		if toLUFS(b) > absThreshold {
			absGated = append(absGated, b)
			absGatedSum += b
		}
	}

	if len(absGated) == 0 {
		return math.Inf(-1)
	}

	// 2. Relative gating
	gammaRel := toLUFS(absGatedSum/float64(len(absGated))) + relThreshold

	var (
		relGatedSum   float64
		relGatedCount int
	)

	for _, b := range absGated {
		if toLUFS(b) > gammaRel {
			relGatedSum += b
			relGatedCount++
		}
	}

	if relGatedCount == 0 {
		return math.Inf(-1)
	}

	return toLUFS(relGatedSum / float64(relGatedCount))
}

// Range returns the loudness range (LRA) in LU, computed from the captured
// short-term powers per EBU Tech 3342: blocks below -70 LUFS are discarded,
// then blocks more than 20 LU below the power mean of the remainder; the
// range is the spread between the 10th and 95th percentiles of the gated
// distribution. Returns 0 when no blocks survive gating.
func (m *Meter) Range() float64 {
	var gated []float64

	gatedSum := 0.0

	for _, b := range m.shortTermPowers {
		if toLUFS(b) > absThreshold {
			gated = append(gated, b)
			gatedSum += b
		}
	}

	if len(gated) == 0 {
		return 0
	}

	gammaRel := toLUFS(gatedSum/float64(len(gated))) + rangeRelThreshold

	var levels []float64

	for _, b := range gated {
		if l := toLUFS(b); l > gammaRel {
			levels = append(levels, l)
		}
	}

	if len(levels) == 0 {
		return 0
	}

	sort.Float64s(levels)

	low := stat.Quantile(rangeLowPercentile, stat.LinInterp, levels, nil)
	high := stat.Quantile(rangeHighPercentile, stat.LinInterp, levels, nil)

	return high - low
}

// Peaks returns the maximum absolute sample peak per channel since Reset.
func (m *Meter) Peaks() []float64 {
	p := make([]float64, m.channels)
	copy(p, m.samplePeak)

	return p
}

// Result holds the outputs of a completed measurement pass.
type Result struct {
	Momentary   []float64 // momentary loudness series in LUFS, 100 ms grid
	ShortTerm   []float64 // short-term loudness series in LUFS, same grid
	Integrated  float64   // gated integrated loudness in LUFS
	Range       float64   // loudness range in LU
	SamplePeaks []float64 // absolute sample peak per channel
}

// Analyze runs a complete measurement pass over planar channel data and
// returns the loudness series, integrated loudness, and loudness range.
func Analyze(channels [][]float64, sampleRate float64) (*Result, error) {
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

	m := NewMeter(WithSampleRate(sampleRate), WithChannels(len(channels)))

	frame := make([]float64, len(channels))
	for i := range n {
		for c, ch := range channels {
			frame[c] = ch[i]
		}

		m.process(frame, false)
	}

	m.Flush()

	return &Result{
		Momentary:   m.MomentarySeries(),
		ShortTerm:   m.ShortTermSeries(),
		Integrated:  m.Integrated(),
		Range:       m.Range(),
		SamplePeaks: m.Peaks(),
	}, nil
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return -120.0 // Effective floor
	}

	return -0.691 + core.LinearPowerToDB(meanSquare)
}

func toLUFSSeries(powers []float64) []float64 {
	out := make([]float64, len(powers))
	for i, p := range powers {
		out[i] = toLUFS(p)
	}

	return out
}
