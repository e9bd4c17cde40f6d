package frequency

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-binshift/dsp/core"
	"github.com/cwbudde/algo-binshift/dsp/spectrum"
	"github.com/cwbudde/algo-binshift/dsp/window"
)

var (
	// ErrEmptySignal reports a signal too short to analyze.
	ErrEmptySignal = errors.New("frequency: signal needs at least 2 samples")
	// ErrInvalidSampleRate reports a sample rate that is not positive and finite.
	ErrInvalidSampleRate = errors.New("frequency: sample rate must be positive and finite")
)

// Peak is the strongest non-DC component of a block.
type Peak struct {
	Frequency float64 // Hz, interpolated between bins
	Amplitude float64 // sine amplitude, corrected for the window's coherent gain
}

// Analyzer computes one-sided magnitude spectra of fixed-length blocks with
// a Hann window. It reuses its FFT and buffers between calls and is not safe
// for concurrent use.
type Analyzer struct {
	size   int
	fft    *fourier.FFT
	window []float64
	gain   float64
	buf    []float64
	coeffs []complex128
	mag    []float64
}

// NewAnalyzer returns an analyzer for blocks of size samples.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: size=%d", ErrEmptySignal, size)
	}

	return &Analyzer{
		size:   size,
		fft:    fourier.NewFFT(size),
		window: window.Generate(window.TypeHann, size, window.WithPeriodic()),
		gain:   window.Info(window.TypeHann).CoherentGain,
		buf:    make([]float64, size),
		coeffs: make([]complex128, size/2+1),
		mag:    make([]float64, size/2+1),
	}, nil
}

// Size returns the block length.
func (a *Analyzer) Size() int { return a.size }

// Magnitude returns the windowed one-sided magnitude spectrum of block,
// size/2+1 bins. block must have exactly Size samples. The returned slice is
// reused by the next call.
func (a *Analyzer) Magnitude(block []float64) ([]float64, error) {
	if len(block) != a.size {
		return nil, fmt.Errorf("frequency: block length %d, want %d", len(block), a.size)
	}

	copy(a.buf, block)
	if err := window.ApplyCoefficientsInPlace(a.buf, a.window); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.buf)
	a.mag = spectrum.Magnitude(a.mag, a.coeffs)

	return a.mag, nil
}

// Stats returns the spectral descriptors of block.
func (a *Analyzer) Stats(block []float64, sampleRate float64) (Stats, error) {
	if !core.IsFinitePositive(sampleRate) {
		return Stats{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	mag, err := a.Magnitude(block)
	if err != nil {
		return Stats{}, err
	}

	return Calculate(mag, sampleRate), nil
}

// Peak returns the strongest non-DC component of block, refined by
// parabolic interpolation over the neighbouring bins. Silence yields a zero
// Peak.
func (a *Analyzer) Peak(block []float64, sampleRate float64) (Peak, error) {
	if !core.IsFinitePositive(sampleRate) {
		return Peak{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	mag, err := a.Magnitude(block)
	if err != nil {
		return Peak{}, err
	}

	if len(mag) < 2 {
		return Peak{}, nil
	}

	peak := 1 + floats.MaxIdx(mag[1:])
	if mag[peak] == 0 {
		return Peak{}, nil
	}

	pos := float64(peak)
	if peak < len(mag)-1 {
		pos += parabolicOffset(mag[peak-1], mag[peak], mag[peak+1])
	}

	return Peak{
		Frequency: pos * sampleRate / float64(a.size),
		Amplitude: 2 * mag[peak] / (float64(a.size) * a.gain),
	}, nil
}

// parabolicOffset returns the vertex offset in [-0.5, 0.5] of the parabola
// through three equally spaced points.
func parabolicOffset(left, center, right float64) float64 {
	den := left - 2*center + right
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(left-right)/den, -0.5, 0.5)
}
