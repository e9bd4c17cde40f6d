package buffer

import "fmt"

// OverlapAdder holds the current and previous synthesized frames and emits
// their half-frame overlap.
//
// OverlapAdder is not safe for concurrent use.
type OverlapAdder struct {
	current *Buffer
	last    *Buffer
	size    int
	half    int
}

// NewOverlapAdder returns a zeroed overlap-adder for frames of size samples.
func NewOverlapAdder(size int) (*OverlapAdder, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &OverlapAdder{
		current: New(size),
		last:    New(size),
		size:    size,
		half:    size / 2,
	}, nil
}

// Size returns the frame size.
func (o *OverlapAdder) Size() int { return o.size }

// Swap retires the current frame to last. The returned buffer from the
// next Current call holds the frame synthesized two swaps ago and is meant
// to be overwritten.
func (o *OverlapAdder) Swap() {
	o.current.Swap(o.last)
}

// Current returns the frame the synthesis stage writes into.
func (o *OverlapAdder) Current() []float64 {
	return o.current.samples
}

// At returns current[(cursor+N/2) mod N] + last[cursor] for a cursor in
// [0, N).
func (o *OverlapAdder) At(cursor int) float64 {
	head := cursor + o.half
	if head >= o.size {
		head -= o.size
	}

	return o.current.samples[head] + o.last.samples[cursor]
}

// Reset zeroes both frames.
func (o *OverlapAdder) Reset() {
	o.current.Zero()
	o.last.Zero()
}
