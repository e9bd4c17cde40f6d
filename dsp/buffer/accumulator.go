package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a frame size that cannot be split into two halves.
var ErrInvalidSize = errors.New("buffer: frame size must be even and >= 2")

// Accumulator builds half-overlapped frames of a fixed size from a sample
// stream.
//
// Every sample is written to the active buffer at the cursor and to the
// standby buffer half a frame further on, so when the active frame is full
// the standby buffer already holds its second half as its own first half.
//
// Accumulator is not safe for concurrent use.
type Accumulator struct {
	active  *Buffer
	standby *Buffer
	size    int
	half    int
	cursor  int
}

// NewAccumulator returns a zeroed accumulator for frames of size samples.
func NewAccumulator(size int) (*Accumulator, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &Accumulator{
		active:  New(size),
		standby: New(size),
		size:    size,
		half:    size / 2,
	}, nil
}

// Size returns the frame size.
func (a *Accumulator) Size() int { return a.size }

// Cursor returns the position of the next write into the active frame.
// It equals Size only between a Write that reported a full frame and the
// following Advance.
func (a *Accumulator) Cursor() int { return a.cursor }

// Write stores sample and reports whether the active frame is now full.
// Once it returns true the caller must consume Frame and call Advance
// before writing again.
func (a *Accumulator) Write(sample float64) bool {
	a.active.samples[a.cursor] = sample

	pos := a.cursor + a.half
	if pos >= a.size {
		pos -= a.size
	}
	a.standby.samples[pos] = sample

	a.cursor++

	return a.cursor == a.size
}

// Frame returns the active frame. The slice is owned by the accumulator and
// is only valid until the next Advance.
func (a *Accumulator) Frame() []float64 {
	return a.active.samples
}

// Advance promotes the pre-seeded standby buffer to active and moves the
// cursor to the middle of the new frame.
func (a *Accumulator) Advance() {
	a.active.Swap(a.standby)
	a.cursor = a.half
}

// Reset zeroes both buffers and the cursor.
func (a *Accumulator) Reset() {
	a.active.Zero()
	a.standby.Zero()
	a.cursor = 0
}
