// Package audio provides the decoded-audio container shared by all
// analysis code plus file decoding for the common formats.
//
// [Buffer] holds planar float64 channels with a sample rate. [Load]
// decodes WAV, AIFF, MP3 and Ogg Vorbis files by extension and can
// mix to mono and resample in the same pass. The per-format Decode
// functions are exposed for callers that already hold a stream.
package audio
