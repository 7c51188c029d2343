// Package spectrum provides spectrum-domain utilities and short-time
// Fourier analysis.
//
// The conversion helpers (Magnitude, Power, Phase) operate on complex
// spectrum bins from any FFT backend. [Analyzer] performs windowed
// frame-by-frame analysis of real signals using an FFT plan it owns.
package spectrum
