package falcon

import "math"

// ntru.go implements NTRU key generation (§4.5): sampling the short secret
// polynomials f, g, checking the Gram-Schmidt norm bound, and solving the
// NTRU equation f*G - g*F = q via the tower-of-fields descent (recursive
// field norm + Bezout base case + Babai reduction), grounded on the
// structure of the teacher's key generation path in falcon.go, generalized
// here to the full tower (the teacher only handled a single fixed degree).

// sampleShortPoly draws a length-n polynomial with iid coefficients from
// D_{Z,0,sigma} (§4.5 step 1), using the same base sampler signing uses.
func sampleShortPoly(n int, sigma float64, sampler *gaussianSampler, sigmin float64) (IntPoly, error) {
	out := make(IntPoly, n)
	for i := range out {
		v, err := sampler.SamplerZ(0, sigma, sigmin)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// gsNormOK reports whether ||(g,-f)|| (equivalently ||(G,-F)||) is within
// the Gram-Schmidt norm bound 1.17*sqrt(q) (§4.5 step 1).
func gsNormOK(a, b IntPoly) bool {
	norm := math.Sqrt(float64(a.NormSquared() + b.NormSquared()))
	return norm <= gsNormBound()
}

// invertibleModQ reports whether p has an inverse in Fq[x]/(x^n+1), i.e. its
// NTT has no zero coordinate.
func (p *Params) invertibleModQ(f IntPoly) bool {
	vals := p.NTT(f.ToFelt())
	for _, v := range vals {
		if v == 0 {
			return false
		}
	}
	return true
}

// xgcd returns (d, u, v) such that u*a + v*b = d, where |d| = gcd(a,b); d
// can be negative when an input is negative (xgcd(-12, 8) gives d = -4).
func xgcd(a, b int64) (d, u, v int64) {
	if b == 0 {
		return a, 1, 0
	}
	d, u1, v1 := xgcd(b, a%b)
	return d, v1, u1 - (a/b)*v1
}

// ntruSolve solves f*G - g*F = q for (F,G) given short f,g, via the tower
// descent: base case at degree 1 uses the integer extended Euclidean
// algorithm (Bezout); every other level recurses on the field norm and
// lifts the half-degree solution back up, Babai-reducing against f,g.
// Returns ok=false if f,g are not coprime at the base case (caller retries
// keygen with fresh f,g, per §4.5's "restart on failure").
func ntruSolve(f, g IntPoly) (F, G IntPoly, ok bool) {
	n := len(f)
	if n == 1 {
		d, u, v := xgcd(f[0], g[0])
		if d != 1 && d != -1 {
			return nil, nil, false
		}
		// Normalize so that u*f0+v*g0=1 exactly (xgcd may return d=-1).
		if d == -1 {
			u, v = -u, -v
		}
		return IntPoly{-Q * v}, IntPoly{Q * u}, true
	}

	fp := f.FieldNorm()
	gp := g.FieldNorm()
	Fp, Gp, ok := ntruSolve(fp, gp)
	if !ok {
		return nil, nil, false
	}

	capF := Lift(Fp).MulKaratsuba(g.Conjugate())
	capG := Lift(Gp).MulKaratsuba(f.Conjugate())

	capF, capG = babaiReduce(f, g, capF, capG)
	return capF, capG, true
}

// babaiReduce repeatedly reduces (F,G) against the short basis (f,g) by
// subtracting round(k)*f, round(k)*g where k = (F*adj(f)+G*adj(g)) /
// (f*adj(f)+g*adj(g)) computed in FFT form, until k rounds to zero (§4.5
// step 3, the Babai nearest-plane step of the tower descent).
func babaiReduce(f, g, F, G IntPoly) (IntPoly, IntPoly) {
	ff := fftOf(f)
	fg := fftOf(g)

	den := AddFFT(MulFFT(ff, AdjFFT(ff)), MulFFT(fg, AdjFFT(fg)))

	const maxIters = 100
	for iter := 0; iter < maxIters; iter++ {
		fF := fftOf(F)
		fG := fftOf(G)
		num := AddFFT(MulFFT(fF, AdjFFT(ff)), MulFFT(fG, AdjFFT(fg)))
		kFFT := DivFFT(num, den)
		k := RoundIntPoly(ifftOf(kFFT))

		allZero := true
		for _, c := range k {
			if c != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			break
		}
		F = F.Sub(k.MulKaratsuba(f))
		G = G.Sub(k.MulKaratsuba(g))
	}
	return F, G
}

// fftOf and ifftOf give ntru.go's degree-generic callers (which operate at
// every level of the tower, not just n=512/1024) access to the recursive
// FFT without routing through a *Params bound to one fixed N.
func fftOf(p IntPoly) []complex128 {
	coeffs := p.ToFloat64()
	f := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		f[i] = complex(c, 0)
	}
	return fftRec(f, fftRootsFor(len(p)))
}

func ifftOf(f []complex128) []float64 {
	c := ifftRec(f, fftRootsFor(len(f)))
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}

// fftRootsFor returns a root table covering degree n: the package-level 512
// table for n <= 512 and the 1024 table otherwise (each table holds every
// power-of-two length up to its size, which covers every degree the tower
// descent runs at). It builds no new table, so degrees above 1024 are not
// covered.
func fftRootsFor(n int) *fftRoots {
	switch {
	case n <= 512:
		return fftRoots512
	default:
		return fftRoots1024
	}
}
