package window

// metadataByType holds reference spectral properties per window type, taken
// from the usual window-function tables (Harris 1978, Heinzel 2002).
// Parametric windows (Kaiser, Tukey, Gauss, Lanczos) are listed at a fixed
// reference parameter noted below; use [Analyze] for exact values at other
// parameters or lengths.
var metadataByType = map[Type]Metadata{
	TypeRectangular: {
		Name: "Rectangular", ENBW: 1.0000, HighestSidelobe: -13.3,
		CoherentGain: 1.0000, CoherentGainSquared: 1.0000,
	},
	TypeHann: {
		Name: "Hann", ENBW: 1.5000, HighestSidelobe: -31.5,
		CoherentGain: 0.5000, CoherentGainSquared: 0.2500,
	},
	TypeHamming: {
		Name: "Hamming", ENBW: 1.3628, HighestSidelobe: -42.7,
		CoherentGain: 0.5400, CoherentGainSquared: 0.2916,
	},
	TypeBlackman: {
		Name: "Blackman", ENBW: 1.7268, HighestSidelobe: -58.1,
		CoherentGain: 0.4200, CoherentGainSquared: 0.1764,
	},
	TypeBlackmanHarris4Term: {
		Name: "Blackman-Harris 4-term", ENBW: 2.0044, HighestSidelobe: -92.0,
		CoherentGain: 0.3588, CoherentGainSquared: 0.1287,
	},
	TypeFlatTop: {
		Name: "Flat top", ENBW: 3.7702, HighestSidelobe: -93.6,
		CoherentGain: 0.2156, CoherentGainSquared: 0.0465,
	},
	// Kaiser at beta = 8.6 (Blackman-Harris-like shape).
	TypeKaiser: {
		Name: "Kaiser", ENBW: 2.0000, HighestSidelobe: -92.0,
		CoherentGain: 0.3600, CoherentGainSquared: 0.1296,
	},
	// Tukey at alpha = 0.5.
	TypeTukey: {
		Name: "Tukey", ENBW: 1.2222, HighestSidelobe: -15.1,
		CoherentGain: 0.7500, CoherentGainSquared: 0.5625,
	},
	TypeTriangle: {
		Name: "Triangle", ENBW: 1.3333, HighestSidelobe: -26.5,
		CoherentGain: 0.5000, CoherentGainSquared: 0.2500,
	},
	TypeCosine: {
		Name: "Cosine", ENBW: 1.2337, HighestSidelobe: -23.0,
		CoherentGain: 0.6366, CoherentGainSquared: 0.4053,
	},
	TypeWelch: {
		Name: "Welch", ENBW: 1.2000, HighestSidelobe: -21.3,
		CoherentGain: 0.6667, CoherentGainSquared: 0.4444,
	},
	// Lanczos at alpha = 1.
	TypeLanczos: {
		Name: "Lanczos", ENBW: 1.2986, HighestSidelobe: -26.4,
		CoherentGain: 0.5895, CoherentGainSquared: 0.3475,
	},
	// Gauss at alpha = 2.5 (edge value 2^-6.25).
	TypeGauss: {
		Name: "Gauss", ENBW: 1.6710, HighestSidelobe: -55.0,
		CoherentGain: 0.4244, CoherentGainSquared: 0.1801,
	},
	TypeFreeCosine: {
		Name: "Free cosine",
	},
}
