package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-binshift/dsp/core"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max(|x|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Variance       float64 // population variance
	ZeroCrossings  int
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics of signal in one call.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	energy := floats.Dot(signal, signal)
	s := Stats{
		Length:        len(signal),
		DC:            stat.Mean(signal, nil),
		Energy:        energy,
		RMS:           math.Sqrt(energy / float64(len(signal))),
		Peak:          Peak(signal),
		Variance:      stat.PopVariance(signal, nil),
		ZeroCrossings: ZeroCrossings(signal),
	}
	s.fillDerived()

	return s
}

func (s *Stats) fillDerived() {
	s.RMS_dB = core.LinearToDB(s.RMS)
	s.Peak_dB = core.LinearToDB(s.Peak)
	s.CrestFactor = 0
	s.CrestFactor_dB = math.Inf(-1)

	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}
}

// RMS returns the root mean square of signal, 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Max(floats.Max(signal), -floats.Min(signal))
}

// ZeroCrossings counts sign changes between consecutive samples. Zero
// samples belong to the positive side.
func ZeroCrossings(signal []float64) int {
	n := 0

	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0) != (signal[i] >= 0) {
			n++
		}
	}

	return n
}

// StreamingStats accumulates statistics block by block without keeping the
// samples. Variance uses Welford's update.
type StreamingStats struct {
	length   int
	mean     float64
	m2       float64
	energy   float64
	peak     float64
	crossing int
	last     float64
}

// NewStreamingStats returns an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds samples to the running statistics.
func (s *StreamingStats) Update(samples []float64) {
	if len(samples) == 0 {
		return
	}

	if s.length > 0 && (s.last >= 0) != (samples[0] >= 0) {
		s.crossing++
	}

	s.crossing += ZeroCrossings(samples)
	s.energy += floats.Dot(samples, samples)
	s.peak = math.Max(s.peak, Peak(samples))
	s.last = samples[len(samples)-1]

	for _, x := range samples {
		s.length++
		delta := x - s.mean
		s.mean += delta / float64(s.length)
		s.m2 += delta * (x - s.mean)
	}
}

// Result returns the statistics of all samples seen so far.
func (s *StreamingStats) Result() Stats {
	if s.length == 0 {
		return emptyStats()
	}

	out := Stats{
		Length:        s.length,
		DC:            s.mean,
		Energy:        s.energy,
		RMS:           math.Sqrt(s.energy / float64(s.length)),
		Peak:          s.peak,
		Variance:      s.m2 / float64(s.length),
		ZeroCrossings: s.crossing,
	}
	out.fillDerived()

	return out
}

// Reset clears the accumulator.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
