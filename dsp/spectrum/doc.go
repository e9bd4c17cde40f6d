// Package spectrum provides the frequency-domain stages of the bin-shifting
// pitch processor.
//
// [Transform] wraps a single precomputed algo-fft plan and converts between
// real frames and complex spectra without allocating. [ShiftBins] remaps
// spectral bins by a pitch factor and restores conjugate symmetry so the
// inverse transform stays real. [Magnitude] turns bins into magnitudes for
// analysis.
package spectrum
