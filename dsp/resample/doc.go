// Package resample converts audio between sample rates with a polyphase
// FIR resampler. Arbitrary rate pairs are approximated by a reduced
// rational ratio, so common conversions such as 44100 to 48000 run as
// exact 160/147 polyphase filters.
//
// The package serves two analysis needs: aligning decoded files to a
// common analysis rate, and integer oversampling for inter-sample peak
// detection.
package resample
