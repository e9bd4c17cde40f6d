package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	ErrInvalidSize    = errors.New("spectrum: transform size must be a power of two >= 2")
	ErrLengthMismatch = errors.New("spectrum: buffer length mismatch")
)

// Transform is a fixed-size forward/inverse DFT between real frames and
// complex spectra. The plan is created once; Forward and Inverse reuse it
// and do not allocate.
//
// The inverse is normalized by 1/N, so Inverse(Forward(x)) == x.
type Transform struct {
	size int
	plan *algofft.Plan[complex128]
}

// NewTransform creates a transform for frames of the given size.
func NewTransform(size int) (*Transform, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	return &Transform{size: size, plan: plan}, nil
}

// Size returns the frame size in samples.
func (t *Transform) Size() int { return t.size }

// Forward loads frame into dst as real values and transforms it in place.
func (t *Transform) Forward(dst []complex128, frame []float64) error {
	if len(dst) != t.size || len(frame) != t.size {
		return fmt.Errorf("%w: size=%d spectrum=%d frame=%d", ErrLengthMismatch, t.size, len(dst), len(frame))
	}

	for i, x := range frame {
		dst[i] = complex(x, 0)
	}

	if err := t.plan.Forward(dst, dst); err != nil {
		return fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return nil
}

// Inverse transforms spec in place and writes the real part to dst.
// spec is overwritten with the complex time-domain result.
func (t *Transform) Inverse(dst []float64, spec []complex128) error {
	if len(dst) != t.size || len(spec) != t.size {
		return fmt.Errorf("%w: size=%d frame=%d spectrum=%d", ErrLengthMismatch, t.size, len(dst), len(spec))
	}

	if err := t.plan.Inverse(spec, spec); err != nil {
		return fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	for i, c := range spec {
		dst[i] = real(c)
	}

	return nil
}
