// Package biquad implements second-order IIR filter sections in
// Direct Form II Transposed, the runtime underneath the weighting and
// loudness filters.
//
// A [Section] processes samples through one set of [Coefficients]; a
// [Chain] cascades several sections for higher-order responses. The
// package also answers questions about a filter without running it:
// frequency response, impulse response, pole/zero locations, and
// stability. Coefficient recipes live in dsp/filter/design.
package biquad
