package falcon

// ntt.go implements the Number-Theoretic Transform over Fq (§4.1). It
// generalizes the teacher's Falcon-512-only FalconNTT/FalconINTT to both
// n=512 and n=1024 by deriving the primitive 2n-th root of unity from n
// instead of hard-coding it, and caches one twiddle table per Params value.
//
// psi is a primitive 2n-th root of unity: q-1 = 12288 = 2^12*3, so for any
// n=2^k with k<=12, psi = g^((q-1)/2n) has order exactly 2n, where g=11 is
// a primitive root mod q (order 12288).

const primitiveRoot = 11

// nttTable holds precomputed bit-reversed twiddle factors for one ring
// dimension n, shared read-only across all NTT/INTT calls for that n.
type nttTable struct {
	n      int
	zetas  []Felt // forward (Gentleman-Sande) twiddles, bit-reversed order
	izetas []Felt // inverse (Cooley-Tukey) twiddles, bit-reversed order
	ninv   Felt   // n^-1 mod q
}

func bitReverse(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func newNTTTable(n int) *nttTable {
	logn := 0
	for (1 << logn) < n {
		logn++
	}
	psi := Felt(primitiveRoot).Pow(uint32((Q - 1) / (2 * n)))

	t := &nttTable{n: n, zetas: make([]Felt, n), izetas: make([]Felt, n)}
	t.zetas[0] = 1
	for i := 1; i < n; i++ {
		br := bitReverse(i, logn)
		t.zetas[i] = psi.Pow(uint32(br))
	}
	// The inverse butterfly walks the same bit-reversed twiddle sequence
	// backwards, negated: -psi^br(i) at index i equals the inverse of the
	// forward twiddle of the butterfly it undoes (since psi^n = -1).
	t.izetas[0] = 1
	for i := 1; i < n; i++ {
		br := bitReverse(i, logn)
		t.izetas[i] = psi.Pow(uint32(br)).Neg()
	}
	t.ninv = NewFelt(int32(n)).Inv()
	return t
}

// Precomputed tables for the two standard parameter sets; Params.ntt()
// returns the one matching its N.
var nttTable512 = newNTTTable(512)
var nttTable1024 = newNTTTable(1024)

func (p *Params) ntt() *nttTable {
	if p.N == 512 {
		return nttTable512
	}
	return nttTable1024
}

// NTT computes the forward transform of poly (coefficient form) into NTT
// evaluation form, in NTT order (§4.1: "outputs are in NTT order, not
// bit-reversed back"). poly must have length n and is not modified.
func (p *Params) NTT(poly []Felt) []Felt {
	t := p.ntt()
	n := t.n
	out := make([]Felt, n)
	copy(out, poly)

	k := 1
	for length := n / 2; length >= 1; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := t.zetas[k]
			k++
			for j := start; j < start+length; j++ {
				u := out[j]
				v := out[j+length].Mul(zeta)
				out[j] = u.Add(v)
				out[j+length] = u.Sub(v)
			}
		}
	}
	return out
}

// INTT computes the inverse transform, converting from NTT evaluation form
// back to coefficients, including the 1/n scaling (§4.1).
func (p *Params) INTT(poly []Felt) []Felt {
	t := p.ntt()
	n := t.n
	out := make([]Felt, n)
	copy(out, poly)

	k := n - 1
	for length := 1; length <= n/2; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := t.izetas[k]
			k--
			for j := start; j < start+length; j++ {
				u := out[j]
				v := out[j+length]
				out[j] = u.Add(v)
				out[j+length] = u.Sub(v).Mul(zeta)
			}
		}
	}
	for i := range out {
		out[i] = out[i].Mul(t.ninv)
	}
	return out
}

// MulModQ computes a*b mod (x^n+1, q) via NTT: forward-transform both
// operands, multiply pointwise, inverse-transform.
func (p *Params) MulModQ(a, b []Felt) []Felt {
	na := p.NTT(a)
	nb := p.NTT(b)
	prod := make([]Felt, len(na))
	for i := range prod {
		prod[i] = na[i].Mul(nb[i])
	}
	return p.INTT(prod)
}
