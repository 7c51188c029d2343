package loudness

import (
	"github.com/cwbudde/algo-audiofeatures/dsp/core"
	"github.com/cwbudde/algo-audiofeatures/dsp/filter/biquad"
	"github.com/cwbudde/algo-audiofeatures/dsp/filter/weighting"
)

const (
	// silenceFloorDB clamps frames whose weighted power falls below
	// silencePower.
	silenceFloorDB = -90.0
	silencePower   = 1e-9
)

// Vickers computes a simple perceptual frame loudness: the input is
// B-weighted (IEC 61672) and the mean-square power converted to dB.
//
// The weighting filter carries state across calls, so feeding contiguous
// frames is equivalent to filtering the whole signal once. Call Reset
// before starting a new signal.
type Vickers struct {
	chain *biquad.Chain
}

// NewVickers returns a Vickers loudness meter for the given sample rate.
// Panics if sampleRate <= 0.
func NewVickers(sampleRate float64) *Vickers {
	return &Vickers{chain: weighting.New(weighting.TypeB, sampleRate)}
}

// Loudness returns the weighted loudness of frame in dB. Frames with
// weighted power below 1e-9 clamp to the -90 dB floor.
func (v *Vickers) Loudness(frame []float64) float64 {
	if len(frame) == 0 {
		return silenceFloorDB
	}

	var sum float64

	for _, x := range frame {
		y := v.chain.ProcessSample(x)
		sum += y * y
	}

	power := sum / float64(len(frame))
	if power < silencePower {
		return silenceFloorDB
	}

	return core.LinearPowerToDB(power)
}

// Reset clears the weighting filter state.
func (v *Vickers) Reset() {
	v.chain.Reset()
}
