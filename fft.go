package falcon

import "math/cmplx"

// fft.go implements the complex split-radix FFT over R[x]/(x^n+1) (§4.2). A
// real polynomial of degree < n is represented in "FFT form" as its n
// complex evaluations at the primitive 2n-th roots of unity (the roots of
// x^n+1, which come in conjugate pairs), in the cyclotomic bit-reversed
// order the Falcon specification uses. Split/merge are the primitives the
// Falcon tree and ffSampling (both in tree.go) recurse through.

// fftRoots caches, for every power-of-two length m encountered while
// recursing down from n, the m complex 2m-th roots of unity used by
// split/merge at that level, in the order FFT evaluates at them: entry 2i
// squares to entry i of the length-m/2 table, and entry 2i+1 is its negation.
// Indexed by m.
type fftRoots struct {
	byLength map[int][]complex128
}

func newFFTRoots(n int) *fftRoots {
	r := &fftRoots{byLength: make(map[int][]complex128)}
	prev := []complex128{complex(0, 1), complex(0, -1)}
	r.byLength[2] = prev
	for m := 4; m <= n; m *= 2 {
		roots := make([]complex128, m)
		for i := 0; i < m/2; i++ {
			roots[2*i] = cmplx.Sqrt(prev[i])
			roots[2*i+1] = -roots[2*i]
		}
		r.byLength[m] = roots
		prev = roots
	}
	return r
}

var fftRoots512 = newFFTRoots(512)
var fftRoots1024 = newFFTRoots(1024)

func (p *Params) fftRootsTable() *fftRoots {
	if p.N == 512 {
		return fftRoots512
	}
	return fftRoots1024
}

// FFT transforms a real polynomial (length n, as float64 coefficients) into
// FFT form (length n, but only the first n/2 complex slots are independent
// — see below). Internally it works on the full-length recursive structure
// and returns a length-n array whose even/odd halves mirror the standard
// "coeffs interleaved as the recursion descends" layout.
func (p *Params) FFT(coeffs []float64) []complex128 {
	f := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		f[i] = complex(c, 0)
	}
	return fftRec(f, p.fftRootsTable())
}

func fftRec(f []complex128, roots *fftRoots) []complex128 {
	n := len(f)
	if n == 1 {
		return []complex128{f[0]}
	}
	if n == 2 {
		return []complex128{f[0] + complex(0, 1)*f[1], f[0] - complex(0, 1)*f[1]}
	}
	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = f[2*i]
		odd[i] = f[2*i+1]
	}
	f0 := fftRec(even, roots)
	f1 := fftRec(odd, roots)
	return mergeFFT(f0, f1, roots.byLength[n])
}

// IFFT is the inverse of FFT: given a length-n complex FFT-form array,
// recover the length-n real coefficient array.
func (p *Params) IFFT(f []complex128) []float64 {
	c := ifftRec(f, p.fftRootsTable())
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}

func ifftRec(f []complex128, roots *fftRoots) []complex128 {
	n := len(f)
	if n == 1 {
		return []complex128{f[0]}
	}
	if n == 2 {
		return []complex128{
			(f[0] + f[1]) / 2,
			(f[0] - f[1]) / complex(0, 2),
		}
	}
	f0, f1 := splitFFT(f, roots.byLength[n])
	even := ifftRec(f0, roots)
	odd := ifftRec(f1, roots)
	out := make([]complex128, n)
	for i := 0; i < n/2; i++ {
		out[2*i] = even[i]
		out[2*i+1] = odd[i]
	}
	return out
}

// splitFFT implements the §4.2 "split" primitive: given a length-m FFT-form
// array, return two length-m/2 FFT-form arrays (f0, f1) with
// f(x) = f0(x^2) + x*f1(x^2).
func splitFFT(f []complex128, roots []complex128) (f0, f1 []complex128) {
	m := len(f)
	f0 = make([]complex128, m/2)
	f1 = make([]complex128, m/2)
	for i := 0; i < m/2; i++ {
		f0[i] = 0.5 * (f[2*i] + f[2*i+1])
		f1[i] = 0.5 * (f[2*i] - f[2*i+1]) * cmplx.Conj(roots[2*i])
	}
	return f0, f1
}

// mergeFFT is the inverse of splitFFT.
func mergeFFT(f0, f1 []complex128, roots []complex128) []complex128 {
	m := len(f0) * 2
	f := make([]complex128, m)
	for i := 0; i < m/2; i++ {
		f[2*i] = f0[i] + roots[2*i]*f1[i]
		f[2*i+1] = f0[i] - roots[2*i]*f1[i]
	}
	return f
}

// AddFFT, SubFFT, MulFFT, DivFFT are pointwise operations on FFT-form
// arrays, valid regardless of length since they never need the roots table.

func AddFFT(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func SubFFT(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func MulFFT(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

func DivFFT(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out
}

// AdjFFT implements the Galois conjugate x -> x^-1 in FFT form, which acts
// pointwise as complex conjugation (the roots come in conjugate pairs).
func AdjFFT(a []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = cmplx.Conj(a[i])
	}
	return out
}

// NegFFT negates every coefficient in FFT form.
func NegFFT(a []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = -a[i]
	}
	return out
}
