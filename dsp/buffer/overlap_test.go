package buffer

import (
	"errors"
	"testing"
)

func TestNewOverlapAdderValidatesSize(t *testing.T) {
	if _, err := NewOverlapAdder(5); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewOverlapAdder(5) error = %v, want ErrInvalidSize", err)
	}
}

func TestOverlapAdderAt(t *testing.T) {
	o, err := NewOverlapAdder(4)
	if err != nil {
		t.Fatalf("NewOverlapAdder() error = %v", err)
	}

	copy(o.Current(), []float64{1, 2, 3, 4})
	o.Swap()
	copy(o.Current(), []float64{10, 20, 30, 40})

	// current[(c+2)%4] + last[c]
	want := []float64{30 + 1, 40 + 2, 10 + 3, 20 + 4}
	for c := range 4 {
		if got := o.At(c); got != want[c] {
			t.Fatalf("At(%d) = %v, want %v", c, got, want[c])
		}
	}
}

func TestOverlapAdderSwapReusesStorage(t *testing.T) {
	o, err := NewOverlapAdder(2)
	if err != nil {
		t.Fatalf("NewOverlapAdder() error = %v", err)
	}

	first := o.Current()
	o.Swap()
	o.Swap()

	if &o.Current()[0] != &first[0] {
		t.Fatal("two swaps should return the original storage")
	}
}

func TestOverlapAdderReset(t *testing.T) {
	o, err := NewOverlapAdder(4)
	if err != nil {
		t.Fatalf("NewOverlapAdder() error = %v", err)
	}

	copy(o.Current(), []float64{1, 1, 1, 1})
	o.Swap()
	copy(o.Current(), []float64{2, 2, 2, 2})
	o.Reset()

	for c := range 4 {
		if got := o.At(c); got != 0 {
			t.Fatalf("At(%d) = %v after Reset, want 0", c, got)
		}
	}
}
