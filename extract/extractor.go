package extract

import "github.com/cwbudde/algo-audiofeatures/audio"

// Extractor is the contract shared by all feature algorithms.
//
// Headers and Compute are aligned: Compute returns exactly one value per
// header name, in the same order, for every buffer it accepts. Headers is
// pure configuration and never touches audio data.
type Extractor interface {
	// Headers returns the output column names in computation order. The
	// slice is a fresh copy on every call.
	Headers() []string

	// Compute analyzes the buffer and returns one value per header.
	// Degenerate signals yield NaN values, not errors; errors report
	// shape mismatches only.
	Compute(buf *audio.Buffer) ([]float64, error)
}

// monoSignal reduces a buffer to a single channel for mono analysis:
// channel 0 as-is for mono input, the channel mean otherwise.
func monoSignal(buf *audio.Buffer) []float64 {
	if buf.Channels() == 1 {
		return buf.Channel(0)
	}

	return buf.MixMono()
}
