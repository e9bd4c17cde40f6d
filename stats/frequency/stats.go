package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-binshift/dsp/core"
)

// Stats holds descriptors of a one-sided magnitude spectrum.
type Stats struct {
	BinCount int
	Peak     float64 // largest magnitude
	Peak_dB  float64 //nolint:revive
	PeakBin  int
	PeakFreq float64 // Hz
	Energy   float64 // sum of squared magnitudes
	Centroid float64 // Hz
	Flatness float64 // 0..1
	Rolloff  float64 // Hz, 85% of energy
}

// binFreq returns the frequency in Hz of bin i of a one-sided spectrum with
// binCount bins (fftSize = 2*(binCount-1)).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes spectral descriptors from a one-sided magnitude spectrum
// (linear scale, bins 0..FFTSize/2).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n < 2 {
		s := Stats{BinCount: n, Peak_dB: math.Inf(-1)}
		if n == 1 {
			s.Peak = magnitude[0]
			s.Peak_dB = core.LinearToDB(s.Peak)
			s.Energy = s.Peak * s.Peak
		}

		return s
	}

	peakBin := floats.MaxIdx(magnitude)
	energy := floats.Dot(magnitude, magnitude)

	return Stats{
		BinCount: n,
		Peak:     magnitude[peakBin],
		Peak_dB:  core.LinearToDB(magnitude[peakBin]),
		PeakBin:  peakBin,
		PeakFreq: binFreq(peakBin, sampleRate, n),
		Energy:   energy,
		Centroid: centroid(magnitude, sampleRate, floats.Sum(magnitude)),
		Flatness: flatness(magnitude),
		Rolloff:  rolloff(magnitude, sampleRate, 0.85, energy),
	}
}

// centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func centroid(magnitude []float64, sampleRate, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}

	return weighted / sumMag
}

// flatness is the spectral flatness (Wiener entropy) of bins 1..N-1. A
// spectrum with any zero bin has flatness 0.
func flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]

	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 || floats.Min(bins) <= 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range bins {
		sumLog += math.Log(v)
	}

	return math.Exp(sumLog/float64(len(bins))) / mean
}

// rolloff returns the frequency below which percent (0..1) of the spectral
// energy total lies.
func rolloff(magnitude []float64, sampleRate, percent, total float64) float64 {
	n := len(magnitude)
	if n < 2 || total == 0 {
		return 0
	}

	threshold := percent * total
	cum := 0.0

	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}
