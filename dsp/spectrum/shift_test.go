package spectrum

import (
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-binshift/internal/testutil"
)

// isConjugateSymmetric reports whether spec[N-i] equals conj(spec[i]) within
// tol for every i in [1, N/2-1].
func isConjugateSymmetric(spec []complex128, tol float64) bool {
	n := len(spec)
	for i := 1; i < n/2; i++ {
		if cmplx.Abs(spec[n-i]-cmplx.Conj(spec[i])) > tol {
			return false
		}
	}

	return true
}

func realSpectrum(t *testing.T, n int) []complex128 {
	t.Helper()

	tr, err := NewTransform(n)
	if err != nil {
		t.Fatalf("NewTransform() error = %v", err)
	}

	spec := make([]complex128, n)
	if err := tr.Forward(spec, testutil.DeterministicNoise(3, 1, n)); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	return spec
}

func TestShiftBinsIdentity(t *testing.T) {
	const n = 64

	src := realSpectrum(t, n)
	orig := append([]complex128(nil), src...)
	dst := make([]complex128, n)

	ShiftBins(dst, src, 1)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("src[%d] modified: %v -> %v", i, orig[i], src[i])
		}
	}

	for i := 0; i <= n/2; i++ {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}

	for i := 1; i < n/2; i++ {
		if cmplx.Abs(dst[n-i]-src[n-i]) > 1e-12 {
			t.Fatalf("dst[%d] = %v, want %v", n-i, dst[n-i], src[n-i])
		}
	}
}

func TestShiftBinsOctaveUp(t *testing.T) {
	const n = 32

	src := realSpectrum(t, n)
	dst := make([]complex128, n)

	ShiftBins(dst, src, 2)

	for k := 0; 2*k < n/2; k++ {
		if dst[2*k] != src[k] {
			t.Fatalf("dst[%d] = %v, want src[%d] = %v", 2*k, dst[2*k], k, src[k])
		}

		if k > 0 && dst[2*k-1] != 0 {
			t.Fatalf("odd bin %d should be empty, got %v", 2*k-1, dst[2*k-1])
		}
	}

	// src[N/4] lands on Nyquist and is doubled there.
	if want := 2 * src[n/4]; dst[n/2] != want {
		t.Fatalf("dst[N/2] = %v, want %v", dst[n/2], want)
	}
}

// rampSpectrum returns src[k] = k for k <= N/2, mirrored above.
func rampSpectrum(n int) []complex128 {
	src := make([]complex128, n)
	for k := 0; k <= n/2; k++ {
		src[k] = complex(float64(k), 0)
	}
	MirrorConjugate(src)

	return src
}

func TestShiftBinsOctaveDownAccumulates(t *testing.T) {
	const n = 32

	src := rampSpectrum(n)
	dst := make([]complex128, n)
	ShiftBins(dst, src, 0.5)

	// Bins 2k and 2k+1 collide on k.
	for k := 0; k < n/4; k++ {
		want := complex(float64(2*k)+float64(2*k+1), 0)
		if dst[k] != want {
			t.Fatalf("dst[%d] = %v, want %v", k, dst[k], want)
		}
	}

	// The halved source Nyquist and the first mirrored bin meet on N/4.
	if want := complex(float64(n/2)/2+float64(n/2-1), 0); dst[n/4] != want {
		t.Fatalf("dst[N/4] = %v, want %v", dst[n/4], want)
	}

	// Mirrored bins 2k and 2k+1 (values n-2k and n-2k-1) fold onto k.
	for k := n/4 + 1; k < n/2; k++ {
		want := complex(float64(n-2*k)+float64(n-2*k-1), 0)
		if dst[k] != want {
			t.Fatalf("dst[%d] = %v, want %v", k, dst[k], want)
		}
	}

	if dst[n/2] != 0 {
		t.Fatalf("dst[N/2] = %v, want 0", dst[n/2])
	}
}

func TestShiftBinsBelowUnityFillsTopBins(t *testing.T) {
	const n = 32

	src := rampSpectrum(n)
	orig := append([]complex128(nil), src...)
	dst := make([]complex128, n)
	ShiftBins(dst, src, 0.75)

	// Scan runs to bin 22 (22*0.75 = 16.5 < 17); bins 16..22 hold
	// 8 (halved Nyquist), 15, 14, 13, 12, 11, 10.
	tests := []struct {
		bin  int
		want complex128
	}{
		{bin: 12, want: 8 + 15},
		{bin: 13, want: 14},
		{bin: 14, want: 13},
		{bin: 15, want: 12 + 11},
		{bin: 16, want: 2 * 10},
	}
	for _, tt := range tests {
		if dst[tt.bin] != tt.want {
			t.Fatalf("dst[%d] = %v, want %v", tt.bin, dst[tt.bin], tt.want)
		}
	}

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("src[%d] modified: %v -> %v", i, orig[i], src[i])
		}
	}
}

func TestShiftBinsSmallFactorStaysInRange(t *testing.T) {
	const n = 16

	src := rampSpectrum(n)
	dst := make([]complex128, n)

	for _, factor := range []float64{0.5, 0.25, 0.1} {
		ShiftBins(dst, src, factor)

		if !isConjugateSymmetric(dst, 0) {
			t.Fatalf("factor %v: result not conjugate symmetric", factor)
		}
	}

	// With factor < 1/N every bin lands on DC, the Nyquist bin at half weight.
	ShiftBins(dst, src, 0.01)

	want := complex(0, 0)
	for k, v := range src {
		if k == n/2 {
			v /= 2
		}
		want += v
	}

	if dst[0] != want {
		t.Fatalf("dst[0] = %v, want %v", dst[0], want)
	}
}

func TestShiftBinsConjugateSymmetry(t *testing.T) {
	const n = 4096

	src := realSpectrum(t, n)
	dst := make([]complex128, n)

	for _, factor := range []float64{0.3, 0.5, 0.75, 1, 1.25, 1.5, 2, 3.7} {
		ShiftBins(dst, src, factor)

		for i := 1; i < n/2; i++ {
			if dst[n-i] != cmplx.Conj(dst[i]) {
				t.Fatalf("factor=%v: dst[%d] = %v, want conj(dst[%d]) = %v",
					factor, n-i, dst[n-i], i, cmplx.Conj(dst[i]))
			}
		}

		if !isConjugateSymmetric(dst, 0) {
			t.Fatalf("factor=%v: not conjugate symmetric", factor)
		}
	}
}

func TestShiftBinsClearsDestination(t *testing.T) {
	const n = 16

	src := make([]complex128, n)
	dst := make([]complex128, n)

	for i := range dst {
		dst[i] = 1 + 1i
	}

	ShiftBins(dst, src, 1.5)

	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d] = %v, want 0", i, v)
		}
	}
}

func TestShiftBinsMismatchedLengthIsNoOp(t *testing.T) {
	src := make([]complex128, 16)
	dst := []complex128{1, 2, 3}

	ShiftBins(dst, src, 1)

	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("dst modified: %v", dst)
	}
}

func TestMirrorConjugate(t *testing.T) {
	spec := []complex128{1, 1 + 1i, 2, 1 + 1i}
	if isConjugateSymmetric(spec, 1e-12) {
		t.Fatal("spec[3] is not conj(spec[1]) before mirroring")
	}

	MirrorConjugate(spec)

	if !isConjugateSymmetric(spec, 1e-12) {
		t.Fatal("expected symmetry after MirrorConjugate")
	}
}
