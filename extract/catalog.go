package extract

// Info describes one entry of the extractor registry.
type Info struct {
	// Name is the registry key used to select the extractor.
	Name string

	// Stereo reports whether the extractor requires two channels.
	Stereo bool

	// New constructs the extractor for the given sample rate.
	New func(sampleRate float64, opts ...Option) (Extractor, error)
}

// Catalog returns the extractor registry in canonical order. The slice is
// fresh on every call.
func Catalog() []Info {
	return []Info{
		{
			Name: "spectral",
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewSpectral(sampleRate, opts...)
			},
		},
		{
			Name: "crest_factor",
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewCrestFactor(sampleRate, opts...)
			},
		},
		{
			Name:   "loudness",
			Stereo: true,
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewLoudness(sampleRate, opts...)
			},
		},
		{
			Name: "dynamic_spread",
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewDynamicSpread(sampleRate, opts...)
			},
		},
		{
			Name: "distortion",
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewDistortion(sampleRate, opts...)
			},
		},
		{
			Name:   "stereo",
			Stereo: true,
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewStereoFeatures(sampleRate, opts...)
			},
		},
		{
			Name:   "phase_correlation",
			Stereo: true,
			New: func(sampleRate float64, opts ...Option) (Extractor, error) {
				return NewPhaseCorrelation(sampleRate, opts...)
			},
		},
	}
}
