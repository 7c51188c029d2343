// Package weighting builds the standard A, B, C, and Z frequency
// weighting filters as biquad cascades.
//
// A weighting curve shapes a signal's spectrum to follow the ear's
// level-dependent sensitivity before an energy measurement: A for low
// levels, B for mid levels, C for high levels, and Z for none. Each
// digital filter comes from the bilinear transform of the analog
// prototype poles and is pinned to 0 dB at 1 kHz.
//
// The B curve feeds the microdynamics measurement in measure/loudness;
// the others are provided for completeness.
package weighting
