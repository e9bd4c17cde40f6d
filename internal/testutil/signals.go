package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Delay returns signal shifted right by n samples, zero-filled at the head
// and truncated to the original length.
func Delay(signal []float64, n int) []float64 {
	out := make([]float64, len(signal))
	if n < 0 || n >= len(signal) {
		return out
	}
	copy(out[n:], signal)
	return out
}

// Blocks splits signal into consecutive chunks of at most size samples.
// The chunks alias signal.
func Blocks(signal []float64, size int) [][]float64 {
	if size <= 0 {
		return nil
	}
	var out [][]float64
	for start := 0; start < len(signal); start += size {
		end := min(start+size, len(signal))
		out = append(out, signal[start:end])
	}
	return out
}
