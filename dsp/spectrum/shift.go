package spectrum

import (
	"math"
	"math/cmplx"
)

// ShiftBins remaps the bins of src by factor into dst.
//
// Every bin k of src with k*factor < N/2+1 is added into dst[floor(k*factor)].
// Additions accumulate, so with factor > 1 several source bins can land on
// one destination bin. With factor < 1 the scan runs past N/2 into the
// mirrored bins, which fill the top of dst up to Nyquist; it stops at N-1,
// so with factor <= 0.5 everything is folded down. The Nyquist bin is halved
// on the way in and
// the destination Nyquist bin doubled on the way out, then the negative
// frequencies are rebuilt with [MirrorConjugate].
//
// No phase correction is applied. src is not modified. Both slices must have
// the same even length N; mismatched or odd lengths leave dst untouched.
func ShiftBins(dst, src []complex128, factor float64) {
	n := len(src)
	if len(dst) != n || n < 2 || n%2 != 0 {
		return
	}

	clear(dst)

	half := n / 2
	limit := float64(half + 1)

	for freq := 0; freq < n; freq++ {
		pos := float64(freq) * factor
		if !(pos < limit) {
			break
		}

		v := src[freq]
		if freq == half {
			v /= 2
		}

		dst[int(math.Floor(pos))] += v
	}

	dst[half] *= 2

	MirrorConjugate(dst)
}

// MirrorConjugate sets spec[N-i] = conj(spec[i]) for i in [1, N/2-1].
func MirrorConjugate(spec []complex128) {
	n := len(spec)
	for i := 1; i < n/2; i++ {
		spec[n-i] = cmplx.Conj(spec[i])
	}
}
