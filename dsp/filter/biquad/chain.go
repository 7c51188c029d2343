package biquad

// Chain runs several biquad sections in series, the output of each
// feeding the next. Weighting curves and other higher-order filters are
// factored into second-order pieces and cascaded this way.
type Chain struct {
	sections []Section
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain applies an overall input gain ahead of the first section.
// Unity by default.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one section per coefficient set,
// cascaded in the order given.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = Section{Coefficients: c}
	}

	return &Chain{sections: sections, gain: cfg.gain}
}

// ProcessSample runs one sample through the whole cascade.
func (c *Chain) ProcessSample(x float64) float64 {
	y := x * c.gain
	for i := range c.sections {
		y = c.sections[i].ProcessSample(y)
	}

	return y
}

// ProcessBlock filters buf in-place through the full cascade, one
// section at a time over the whole block.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the delay registers of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order reports the filter order, two per section.
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections reports how many sections the cascade holds.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain reports the input gain applied ahead of the cascade.
func (c *Chain) Gain() float64 { return c.gain }
