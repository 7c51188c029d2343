// Package shape computes distribution descriptors over real-valued vectors:
// centroid, central moments, spread/skewness/kurtosis, flatness and entropy.
//
// A vector of length n is interpreted as a discrete distribution over
// positions evenly spaced on [0, valueRange]: spectra use the Nyquist range,
// amplitude histograms the unit range. All functions expect nonnegative
// values and are total; degenerate inputs resolve as documented per function
// instead of returning errors.
package shape
