package extract

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	timestats "github.com/cwbudde/algo-audiofeatures/stats/time"
)

// Statistic names recognized by pooling extractors.
const (
	StatMean   = "mean"
	StatStdev  = "stdev"
	StatVar    = "var"
	StatMedian = "median"
	StatMin    = "min"
	StatMax    = "max"
	StatSkew   = "skew"
	StatKurt   = "kurt"
)

// StatPool collects named sample series for later aggregation. Names keep
// insertion order, so pooled output stays deterministic across runs.
type StatPool struct {
	names   []string
	samples map[string][]float64
}

// NewStatPool returns an empty pool.
func NewStatPool() *StatPool {
	return &StatPool{samples: make(map[string][]float64)}
}

// Add appends value to the series registered under name, creating the
// series on first use.
func (p *StatPool) Add(name string, value float64) {
	if _, ok := p.samples[name]; !ok {
		p.names = append(p.names, name)
	}

	p.samples[name] = append(p.samples[name], value)
}

// Names returns the registered series names in insertion order.
func (p *StatPool) Names() []string {
	return append([]string(nil), p.names...)
}

// Samples returns the series registered under name, or nil if no value
// was ever added for it.
func (p *StatPool) Samples(name string) []float64 {
	return p.samples[name]
}

// applyStat reduces a sample series to a single statistic. An empty
// series yields NaN for every statistic: with nothing pooled there is no
// meaningful value, and NaN keeps the output vector aligned with the
// headers.
func applyStat(name string, samples []float64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}

	switch name {
	case StatMean:
		mean, _, _, _ := timestats.Moments(samples)
		return mean
	case StatStdev:
		_, variance, _, _ := timestats.Moments(samples)
		return math.Sqrt(variance)
	case StatVar:
		_, variance, _, _ := timestats.Moments(samples)
		return variance
	case StatSkew:
		_, _, skew, _ := timestats.Moments(samples)
		return skew
	case StatKurt:
		_, _, _, kurt := timestats.Moments(samples)
		return kurt
	case StatMedian:
		return percentile(samples, 0.5)
	case StatMin:
		min := samples[0]
		for _, v := range samples[1:] {
			if v < min {
				min = v
			}
		}

		return min
	case StatMax:
		max := samples[0]
		for _, v := range samples[1:] {
			if v > max {
				max = v
			}
		}

		return max
	default:
		// Unknown names are rejected at construction; reaching this
		// means a statistic slipped past validation.
		return math.NaN()
	}
}

// percentile returns the linearly interpolated p-quantile (p in [0, 1])
// of the samples, leaving the input unmodified.
func percentile(samples []float64, p float64) float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// aggregate reduces the pooled series to one value per (feature,
// statistic) pair, feature-major. It iterates the declared feature names
// rather than the pool's registered names, so features that never pooled
// a sample (a too-short signal, for example) still occupy their slots as
// NaN and the vector stays aligned with the headers.
func aggregate(pool *StatPool, names, stats []string) []float64 {
	out := make([]float64, 0, len(names)*len(stats))

	for _, name := range names {
		samples := pool.Samples(name)
		for _, s := range stats {
			out = append(out, applyStat(s, samples))
		}
	}

	return out
}

// poolHeaders builds the "feature.stat" header list in feature-major,
// statistic-minor order.
func poolHeaders(names, stats []string) []string {
	out := make([]string, 0, len(names)*len(stats))

	for _, name := range names {
		for _, s := range stats {
			out = append(out, name+"."+s)
		}
	}

	return out
}

// validStats rejects empty statistic lists and unknown statistic names.
func validStats(extractor string, stats []string) error {
	if len(stats) == 0 {
		return &ConfigError{
			Extractor: extractor,
			Field:     "stats",
			Reason:    "at least one statistic required",
		}
	}

	for _, s := range stats {
		switch s {
		case StatMean, StatStdev, StatVar, StatMedian, StatMin, StatMax, StatSkew, StatKurt:
		default:
			return &ConfigError{
				Extractor: extractor,
				Field:     "stats",
				Reason:    fmt.Sprintf("unknown statistic %q", s),
			}
		}
	}

	return nil
}
