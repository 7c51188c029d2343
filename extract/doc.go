// Package extract computes numeric descriptors summarizing acoustic
// properties of a decoded audio excerpt: spectral shape, loudness and
// dynamics, distortion, and the stereo image.
//
// Every feature algorithm implements [Extractor]: Headers declares the
// output column names and Compute returns exactly one value per header.
// Frame-wise extractors accumulate per-frame scalars in a [StatPool] and
// aggregate them with summary statistics, producing "name.stat" columns
// in feature-major order.
//
// Degenerate inputs such as silence or constant channels produce NaN
// values rather than errors; that is accepted output semantics. Shape
// problems (wrong channel count, empty buffer) are reported as
// [ShapeError], invalid construction parameters as [ConfigError].
// Extractor instances carry only immutable configuration, so they are
// safe for concurrent use on distinct buffers.
package extract
