package buffer

import (
	"errors"
	"testing"
)

func TestNewAccumulatorValidatesSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, -2} {
		if _, err := NewAccumulator(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewAccumulator(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}

	a, err := NewAccumulator(8)
	if err != nil {
		t.Fatalf("NewAccumulator(8) error = %v", err)
	}

	if a.Size() != 8 || a.Cursor() != 0 {
		t.Fatalf("Size()=%d Cursor()=%d, want 8 0", a.Size(), a.Cursor())
	}
}

func TestAccumulatorFirstFrame(t *testing.T) {
	a, err := NewAccumulator(8)
	if err != nil {
		t.Fatalf("NewAccumulator() error = %v", err)
	}

	for i := range 8 {
		ready := a.Write(float64(i + 1))
		if ready != (i == 7) {
			t.Fatalf("Write #%d ready = %v", i, ready)
		}
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := a.Frame()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAccumulatorHalfOverlap(t *testing.T) {
	a, err := NewAccumulator(8)
	if err != nil {
		t.Fatalf("NewAccumulator() error = %v", err)
	}

	var frames [][]float64

	for i := range 24 {
		if a.Write(float64(i)) {
			frames = append(frames, append([]float64(nil), a.Frame()...))
			a.Advance()

			if a.Cursor() != 4 {
				t.Fatalf("Cursor() after Advance = %d, want 4", a.Cursor())
			}
		}
	}

	// First frame after 8 samples, then one every 4 samples.
	if len(frames) != 5 {
		t.Fatalf("frames = %d, want 5", len(frames))
	}

	for f := range frames {
		start := 4 * f
		for i := range 8 {
			if want := float64(start + i); frames[f][i] != want {
				t.Fatalf("frame %d [%d] = %v, want %v", f, i, frames[f][i], want)
			}
		}
	}
}

func TestAccumulatorReset(t *testing.T) {
	a, err := NewAccumulator(4)
	if err != nil {
		t.Fatalf("NewAccumulator() error = %v", err)
	}

	for range 6 {
		if a.Write(1) {
			a.Advance()
		}
	}

	a.Reset()

	if a.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0", a.Cursor())
	}

	for i, v := range a.Frame() {
		if v != 0 {
			t.Fatalf("frame[%d] = %v, want 0", i, v)
		}
	}

	a.Advance()

	for i, v := range a.Frame() {
		if v != 0 {
			t.Fatalf("standby[%d] = %v, want 0", i, v)
		}
	}
}
