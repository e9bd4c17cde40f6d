package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// parts holds pooled real/imaginary scratch for the vecmath kernels.
type parts struct {
	data []float64
}

var partsPool = sync.Pool{
	New: func() any { return &parts{} },
}

// Magnitude writes |X[k]| for every bin of in to dst and returns
// dst[:len(in)]. dst is reallocated only when its capacity is too small, so
// callers that keep the result between calls do not allocate.
func Magnitude(dst []float64, in []complex128) []float64 {
	n := len(in)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	if n == 0 {
		return dst
	}

	p := partsPool.Get().(*parts)
	if cap(p.data) < 2*n {
		p.data = make([]float64, 2*n)
	}

	re, im := p.data[:n], p.data[n:2*n]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	partsPool.Put(p)

	return dst
}
