// Package loudness implements EBU R128 / ITU-R BS.1770 loudness metering
// together with the auxiliary peak and frame-loudness measures used in
// mastering analysis.
//
// [Meter] produces K-weighted momentary and short-term loudness, captures
// both as series on a fixed grid, and derives gated integrated loudness
// and loudness range (EBU Tech 3342). [Analyze] wraps a full measurement
// pass over planar channel data. [TruePeakDetector] estimates inter-sample
// peaks by oversampling, and [Vickers] measures B-weighted frame loudness.
package loudness
