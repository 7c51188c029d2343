package biquad

// Coefficients is the normalized transfer function of one second-order
// section. The denominator's leading coefficient a0 is assumed to be 1
// and is not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // numerator (feedforward)
	A1, A2     float64 // denominator (feedback)
}

// Section filters samples through a single biquad in Direct Form II
// Transposed, keeping two delay registers between calls.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a Section with the given coefficients and a cleared
// delay line.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample advances the filter by one sample.
//
// Direct Form II Transposed recurrence:
//
//	y  = B0*x + z1
//	z1 = B1*x - A1*y + z2
//	z2 = B2*x - A2*y
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z1
	s.z1 = s.B1*x - s.A1*y + s.z2
	s.z2 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in-place without allocating. Coefficients and
// state live in locals for the duration of the loop; two samples are
// produced per iteration, the second reading the first's freshly
// computed state.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	pairs := len(buf) &^ 1
	for i := 0; i < pairs; i += 2 {
		xa := buf[i]
		ya := b0*xa + z1
		t1 := b1*xa - a1*ya + z2
		t2 := b2*xa - a2*ya

		xb := buf[i+1]
		yb := b0*xb + t1
		z1 = b1*xb - a1*yb + t2
		z2 = b2*xb - a2*yb

		buf[i], buf[i+1] = ya, yb
	}

	if pairs < len(buf) {
		x := buf[pairs]
		y := b0*x + z1
		z1 = b1*x - a1*y + z2
		z2 = b2*x - a2*y
		buf[pairs] = y
	}

	s.z1, s.z2 = z1, z2
}

// Reset clears the delay registers so the next sample starts from
// silence.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}
