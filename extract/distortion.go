package extract

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-audiofeatures/audio"
	"github.com/cwbudde/algo-audiofeatures/stats/shape"
)

const histogramBins = 1001

var distortionFeatures = []string{
	"pmf_centroid",
	"pmf_spread",
	"pmf_skewness",
	"pmf_kurtosis",
	"pmf_flatness",
	"pmf_gauss",
}

// Distortion characterizes the amplitude distribution of the waveform as
// a clipping and saturation indicator. It histograms raw sample values
// into 1001 bins over [−1, 1], describes the histogram's shape (centroid,
// spread, skewness, kurtosis, flatness over unit position range), and
// correlates the histogram's absolute first difference against a Gaussian
// density (σ = 0.2): hard-clipped material piles mass at the edges, which
// drives the squared correlation down.
type Distortion struct{}

// NewDistortion creates a distortion extractor. It neither frames nor
// pools; [WithFrameSize] is rejected.
func NewDistortion(sampleRate float64, opts ...Option) (*Distortion, error) {
	cfg := newConfig(opts...)
	if cfg.frameSizeSet {
		return nil, &ConfigError{
			Extractor: "distortion",
			Field:     "frame size",
			Reason:    "not configurable",
		}
	}

	if err := cfg.validate("distortion", sampleRate); err != nil {
		return nil, err
	}

	return &Distortion{}, nil
}

// Headers implements [Extractor].
func (e *Distortion) Headers() []string {
	return append([]string(nil), distortionFeatures...)
}

// Compute implements [Extractor]. All channels contribute to the
// histogram.
func (e *Distortion) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("distortion", buf, 0); err != nil {
		return nil, err
	}

	hist := amplitudeHistogram(buf)

	moments := shape.CentralMoments(hist, 1)
	spread, skewness, kurtosis := shape.DistributionShape(moments)

	prime := make([]float64, histogramBins-1)
	for i := range prime {
		prime[i] = math.Abs(hist[i+1] - hist[i])
	}

	normal := distuv.Normal{Mu: 0, Sigma: 0.2}

	gauss := make([]float64, histogramBins-1)
	for i := range gauss {
		x := -1.0 + 2.0*float64(i)/float64(len(gauss)-1)
		gauss[i] = normal.Prob(x)
	}

	r := stat.Correlation(prime, gauss, nil)

	return []float64{
		shape.Centroid(hist, 1),
		spread,
		skewness,
		kurtosis,
		shape.Flatness(hist),
		r * r,
	}, nil
}

// amplitudeHistogram counts samples from every channel into bins evenly
// covering [−1, 1]. Values outside the domain and NaN are skipped; the
// right edge falls into the last bin.
func amplitudeHistogram(buf *audio.Buffer) []float64 {
	hist := make([]float64, histogramBins)
	width := 2.0 / float64(histogramBins)

	for ch := 0; ch < buf.Channels(); ch++ {
		for _, x := range buf.Channel(ch) {
			if math.IsNaN(x) || x < -1 || x > 1 {
				continue
			}

			idx := int((x + 1) / width)
			if idx >= histogramBins {
				idx = histogramBins - 1
			}

			hist[idx]++
		}
	}

	return hist
}
