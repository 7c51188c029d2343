package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function. The cosine-sum family shares one
// evaluator driven by per-type coefficient tables; the remaining shapes
// have closed forms.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	TypeKaiser
	TypeTukey
	TypeTriangle
	TypeCosine
	TypeWelch
	TypeLanczos
	TypeGauss
	TypeFreeCosine
)

// Slope selects which edges of the window taper.
type Slope int

const (
	SlopeSymmetric Slope = iota
	SlopeLeft
	SlopeRight
)

// Metadata holds published spectral properties of a window type.
type Metadata struct {
	Name                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha     float64
	periodic  bool
	slope     Slope
	dcRemoval bool
	invert    bool
	bartlett  bool
	custom    []float64
}

func newConfig(opts []Option) config {
	cfg := config{alpha: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithAlpha sets the shape parameter of the parametric windows: Kaiser
// beta, Tukey taper fraction, Gauss width, Lanczos order. Negative values
// are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic selects the periodic (DFT-even) form instead of the
// symmetric one: positions run over n/size rather than n/(size-1).
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithSlope tapers only one edge of the window, leaving the other flat.
func WithSlope(s Slope) Option {
	return func(c *config) {
		c.slope = s
	}
}

// WithDCRemoval subtracts the coefficient mean after generation.
func WithDCRemoval() Option {
	return func(c *config) {
		c.dcRemoval = true
	}
}

// WithInvert flips the window upside down: w[n] becomes 1 - w[n].
func WithInvert() Option {
	return func(c *config) {
		c.invert = true
	}
}

// WithBartlett switches Triangle to the Bartlett variant, which reaches
// zero at both ends.
func WithBartlett() Option {
	return func(c *config) {
		c.bartlett = true
	}
}

// WithCustomCoeffs supplies cosine-sum term coefficients for FreeCosine.
// The slice is copied.
func WithCustomCoeffs(coeffs []float64) Option {
	custom := append([]float64(nil), coeffs...)

	return func(c *config) {
		c.custom = custom
	}
}

// Generate returns window coefficients of the given length, or nil for a
// non-positive length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := newConfig(opts)

	out := make([]float64, length)
	for i := range out {
		out[i] = shapeAt(t, position(i, length, cfg.periodic), cfg)
	}

	finish(out, cfg)

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Info returns the published metadata for a window type, or a zero value
// for unknown types.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// EquivalentNoiseBandwidth returns the ENBW of a coefficient set in bins:
// n * sum(w^2) / sum(w)^2.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients into a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func fixedShape(t Type, size int, opts []Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(t, size, opts...), nil
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return fixedShape(TypeHann, size, opts)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return fixedShape(TypeHamming, size, opts)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return fixedShape(TypeBlackman, size, opts)
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop(size int, opts ...Option) ([]float64, error) {
	return fixedShape(TypeFlatTop, size, opts)
}

// Lanczos returns Lanczos window coefficients.
func Lanczos(size int, opts ...Option) ([]float64, error) {
	return fixedShape(TypeLanczos, size, opts)
}

// Kaiser returns Kaiser window coefficients for the given beta.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, size, append(opts, WithAlpha(beta))...), nil
}

// Tukey returns Tukey window coefficients with taper fraction alpha in
// [0, 1].
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	if err := validateTukey(size, alpha); err != nil {
		return nil, err
	}

	return Generate(TypeTukey, size, append(opts, WithAlpha(alpha))...), nil
}

// Gaussian returns Gaussian window coefficients for the given width
// parameter.
func Gaussian(size int, alpha float64, opts ...Option) ([]float64, error) {
	if err := validateGauss(size, alpha); err != nil {
		return nil, err
	}

	return Generate(TypeGauss, size, append(opts, WithAlpha(alpha))...), nil
}

// position maps sample index n to the normalized coordinate the shape
// evaluators expect: n/(size-1) symmetric, n/size periodic.
func position(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

// shapeAt evaluates the window shape at normalized position x in [0, 1].
func shapeAt(t Type, x float64, cfg config) float64 {
	switch cfg.slope {
	case SlopeLeft:
		if x >= 0.5 {
			return 1
		}

		x *= 2
	case SlopeRight:
		if x <= 0.5 {
			return 1
		}

		x = 2*x - 1
	}

	x = min(max(x, 0), 1)

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeHamming:
		return cosineSum(x, hammingCoeffs)
	case TypeBlackman:
		return cosineSum(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineSum(x, blackmanHarris4Coeffs)
	case TypeFlatTop:
		return cosineSum(x, flatTopCoeffs)
	case TypeKaiser:
		return kaiser(x, cfg.alpha)
	case TypeTukey:
		return tukey(x, cfg.alpha)
	case TypeTriangle:
		return triangle(x, cfg.bartlett)
	case TypeCosine:
		return math.Sin(math.Pi * x)
	case TypeWelch:
		d := x - 0.5
		return 1 - 4*d*d
	case TypeLanczos:
		return sinc((2*x - 1) * cfg.alpha)
	case TypeGauss:
		v := (2*x - 1) * cfg.alpha
		return math.Exp(-math.Ln2 * v * v)
	case TypeFreeCosine:
		if len(cfg.custom) == 0 {
			return 1
		}

		return cosineSum(x, cfg.custom)
	default:
		return 1
	}
}

// finish applies the post-generation options.
func finish(coeffs []float64, cfg config) {
	if cfg.invert {
		for i := range coeffs {
			coeffs[i] = 1 - coeffs[i]
		}
	}

	if cfg.dcRemoval {
		sum := 0.0
		for _, v := range coeffs {
			sum += v
		}

		mean := sum / float64(len(coeffs))
		for i := range coeffs {
			coeffs[i] -= mean
		}
	}
}

// cosineSum evaluates sum(c_k * cos(k * 2*pi*x)) over the term table.
func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiser(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func tukey(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return cosineSum(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}

func triangle(x float64, bartlett bool) float64 {
	if bartlett {
		return 1 - math.Abs(2*x-1)
	}

	if x <= 0.5 {
		return 2 * x
	}

	return 2 * (1 - x)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 approximates the modified Bessel function I0 with the
// Abramowitz & Stegun polynomial fits (9.8.1 / 9.8.2).
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
