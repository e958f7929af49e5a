package falcon

// poly.go implements exact-integer polynomial arithmetic over
// Z[x]/(x^n+1) (§4.3): addition, subtraction, negation, schoolbook/Karatsuba
// multiplication, the p(-x) automorphism the NTRU tower descent needs
// (Conjugate), the field-norm operator that halves the degree, and the
// lifting operator used by that same descent.
//
// IntPoly coefficients are exact (unbounded) integers represented as int64;
// this is sufficient headroom for every magnitude the keygen/signing paths
// produce (short vectors with norms far below 2^62), matching the teacher's
// poly_ring.go choice of a fixed-width integer coefficient type scaled up
// from int16 to int64 for Falcon's wider intermediate products.

// IntPoly is a polynomial over Z with coefficients indexed by ascending
// power of x, implicitly reduced mod x^n+1 by every operation below.
type IntPoly []int64

// NewIntPoly returns the zero polynomial of degree < n.
func NewIntPoly(n int) IntPoly { return make(IntPoly, n) }

// Clone returns a deep copy.
func (p IntPoly) Clone() IntPoly {
	c := make(IntPoly, len(p))
	copy(c, p)
	return c
}

// Add returns p+q mod (x^n+1).
func (p IntPoly) Add(q IntPoly) IntPoly {
	out := make(IntPoly, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Sub returns p-q mod (x^n+1).
func (p IntPoly) Sub(q IntPoly) IntPoly {
	out := make(IntPoly, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Neg returns -p.
func (p IntPoly) Neg() IntPoly {
	out := make(IntPoly, len(p))
	for i := range p {
		out[i] = -p[i]
	}
	return out
}

// ScalarMul returns c*p.
func (p IntPoly) ScalarMul(c int64) IntPoly {
	out := make(IntPoly, len(p))
	for i := range p {
		out[i] = c * p[i]
	}
	return out
}

// MulSchoolbook returns p*q reduced mod x^n+1, using the schoolbook O(n^2)
// method. MulKaratsuba falls back to it for the small degrees (n<=32) the
// NTRU tower descent bottoms out at; it is also the reference for testing
// the NTT-based path.
func (p IntPoly) MulSchoolbook(q IntPoly) IntPoly {
	n := len(p)
	out := make(IntPoly, n)
	for i := 0; i < n; i++ {
		if p[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if q[j] == 0 {
				continue
			}
			k := i + j
			v := p[i] * q[j]
			if k >= n {
				k -= n
				v = -v
			}
			out[k] += v
		}
	}
	return out
}

// MulKaratsuba returns p*q mod x^n+1 via the Karatsuba divide-and-conquer
// multiplication, falling back to schoolbook below a small threshold. This
// is the exact-integer multiplication path §4.3 calls for when magnitudes
// exceed what NTT-mod-q can represent (e.g. intermediate products during
// the NTRU Bezout lift, before the final reduction mod q).
func (p IntPoly) MulKaratsuba(q IntPoly) IntPoly {
	n := len(p)
	if n <= 32 {
		return p.MulSchoolbook(q)
	}
	// Plain (non-negacyclic) Karatsuba product of length 2n-1, then fold
	// the top half back using x^n = -1.
	prod := karatsubaMul(p, q)
	out := make(IntPoly, n)
	for i, c := range prod {
		if i < n {
			out[i] += c
		} else {
			out[i-n] -= c
		}
	}
	return out
}

// karatsubaMul computes the ordinary (non-modular) product of two length-n
// integer slices, returning a length-2n-1 result.
func karatsubaMul(a, b []int64) []int64 {
	n := len(a)
	if n <= 32 {
		out := make([]int64, 2*n-1)
		for i := 0; i < n; i++ {
			if a[i] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i+j] += a[i] * b[j]
			}
		}
		return out
	}
	half := n / 2
	aLo, aHi := a[:half], a[half:]
	bLo, bHi := b[:half], b[half:]

	lo := karatsubaMul(aLo, bLo)
	hi := karatsubaMul(aHi, bHi)

	sumA := make([]int64, len(aHi))
	sumB := make([]int64, len(bHi))
	for i := range aHi {
		sumA[i] = aLo[i] + aHi[i]
	}
	for i := range bHi {
		sumB[i] = bLo[i] + bHi[i]
	}
	mid := karatsubaMul(sumA, sumB)
	for i := range lo {
		mid[i] -= lo[i]
	}
	for i := range hi {
		mid[i] -= hi[i]
	}

	out := make([]int64, 2*n-1)
	for i, c := range lo {
		out[i] += c
	}
	for i, c := range mid {
		out[i+half] += c
	}
	for i, c := range hi {
		out[i+2*half] += c
	}
	return out
}

// Conjugate negates every odd-indexed coefficient of p, i.e. it computes
// p(-x) mod (x^n+1). This is the automorphism the NTRU-tower lift in
// ntru.go needs at each field-norm descent step, not the Galois conjugate
// p(x^-1) of §4.3 (a different automorphism of the same ring).
func (p IntPoly) Conjugate() IntPoly {
	out := p.Clone()
	for i := 1; i < len(out); i += 2 {
		out[i] = -out[i]
	}
	return out
}

// FieldNorm computes N(p)(x^2) = p(x)*p(-x), halving the ring degree from n
// to n/2 (§4.3). The result has n/2 coefficients over the ring Z[x]/(x^(n/2)+1).
func (p IntPoly) FieldNorm() IntPoly {
	n := len(p)
	pNeg := make(IntPoly, n)
	for i := range p {
		if i%2 == 0 {
			pNeg[i] = p[i]
		} else {
			pNeg[i] = -p[i]
		}
	}
	full := p.MulKaratsuba(pNeg) // length n, lives in Z[x]/(x^n+1)
	// full(x) is even in x (only even-power terms survive p(x)*p(-x)); the
	// result as a polynomial in x^2 has n/2 independent coefficients.
	half := make(IntPoly, n/2)
	for i := 0; i < n/2; i++ {
		half[i] = full[2*i]
	}
	return half
}

// Lift embeds a polynomial q(y) (degree < n/2) as q(x^2), the inverse of the
// "drop to x^2 coordinates" step of FieldNorm, used when climbing back up
// the NTRU tower (§4.5 step 3).
func Lift(q IntPoly) IntPoly {
	n := len(q) * 2
	out := make(IntPoly, n)
	for i, c := range q {
		out[2*i] = c
	}
	return out
}

// ToFelt reduces every coefficient mod q into Fq form.
func (p IntPoly) ToFelt() []Felt {
	out := make([]Felt, len(p))
	for i, c := range p {
		out[i] = NewFelt(int32(c % Q))
	}
	return out
}

// NormSquared returns the squared Euclidean norm, sum(c_i^2).
func (p IntPoly) NormSquared() int64 {
	var s int64
	for _, c := range p {
		s += c * c
	}
	return s
}

// ToFloat64 returns the coefficients as float64, for entry into FFT form.
func (p IntPoly) ToFloat64() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = float64(c)
	}
	return out
}

// RoundIntPoly rounds a float64 coefficient slice (e.g. from IFFT) to the
// nearest integers, returning an IntPoly.
func RoundIntPoly(f []float64) IntPoly {
	out := make(IntPoly, len(f))
	for i, c := range f {
		out[i] = int64(roundHalfAwayFromZero(c))
	}
	return out
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}
