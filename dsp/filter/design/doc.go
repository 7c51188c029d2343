// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing. All designers use the RBJ
// audio-EQ cookbook formulas with bilinear-transform frequency warping.
package design
