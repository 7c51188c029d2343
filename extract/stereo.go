package extract

import "github.com/cwbudde/algo-audiofeatures/audio"

var stereoFeatures = []string{
	"side_mid_ratio",
	"lr_imbalance",
}

// StereoFeatures describes the stereo image: the power ratio of the side
// (L−R) to the mid (L+R) signal, and the left/right power imbalance
// normalized to [−1, 1] (negative means left-heavy). A dual-mono signal
// scores 0 on both; total silence yields NaN (0/0).
type StereoFeatures struct{}

// NewStereoFeatures creates a stereo image extractor for stereo signals.
// It neither frames nor pools; [WithFrameSize] is rejected.
func NewStereoFeatures(sampleRate float64, opts ...Option) (*StereoFeatures, error) {
	cfg := newConfig(opts...)
	if cfg.frameSizeSet {
		return nil, &ConfigError{
			Extractor: "stereo",
			Field:     "frame size",
			Reason:    "not configurable",
		}
	}

	if err := cfg.validate("stereo", sampleRate); err != nil {
		return nil, err
	}

	return &StereoFeatures{}, nil
}

// Headers implements [Extractor].
func (e *StereoFeatures) Headers() []string {
	return append([]string(nil), stereoFeatures...)
}

// Compute implements [Extractor]. The buffer must be stereo.
func (e *StereoFeatures) Compute(buf *audio.Buffer) ([]float64, error) {
	if err := checkShape("stereo", buf, 2); err != nil {
		return nil, err
	}

	left, right := buf.Channel(0), buf.Channel(1)

	var sidePow, midPow, leftPow, rightPow float64

	for i := range left {
		l, r := left[i], right[i]
		side := l - r
		mid := l + r

		sidePow += side * side
		midPow += mid * mid
		leftPow += l * l
		rightPow += r * r
	}

	// The sample-count denominators of the four means cancel in both
	// quotients.
	sideMid := sidePow / midPow
	imbalance := (rightPow - leftPow) / (rightPow + leftPow)

	return []float64{sideMid, imbalance}, nil
}
