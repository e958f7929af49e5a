package falcon

// field.go implements Fq, the prime field Z/qZ with q=12289=1+12*2^10 that
// the NTT (§4.1) and the NTRU equation (§4.5) are computed over.
//
// Reduction uses the Barrett method: q fits in 14 bits, so a product of two
// elements fits in 28 bits and a single 64-bit multiply-and-shift recovers
// the remainder without a data-dependent branch count that varies by input
// (one conditional subtraction at the end, same as a modular add).

const (
	barrettShift = 28
)

// barrettMu = floor(2^barrettShift / Q), precomputed once.
var barrettMu = uint64(1<<barrettShift) / Q

// Felt is an element of Z/qZ, always kept reduced to [0, Q).
type Felt uint16

// NewFelt reduces a signed integer into Felt range [0, Q).
func NewFelt(x int32) Felt {
	x %= Q
	if x < 0 {
		x += Q
	}
	return Felt(x)
}

// Add returns a+b mod q.
func (a Felt) Add(b Felt) Felt {
	s := uint32(a) + uint32(b)
	if s >= Q {
		s -= Q
	}
	return Felt(s)
}

// Sub returns a-b mod q.
func (a Felt) Sub(b Felt) Felt {
	if a >= b {
		return a - b
	}
	return a + Q - b
}

// Neg returns -a mod q.
func (a Felt) Neg() Felt {
	if a == 0 {
		return 0
	}
	return Q - a
}

// Mul returns a*b mod q via Barrett reduction.
func (a Felt) Mul(b Felt) Felt {
	prod := uint64(a) * uint64(b)
	q := (prod * barrettMu) >> barrettShift
	r := prod - q*Q
	for r >= Q {
		r -= Q
	}
	return Felt(r)
}

// Pow returns a^e mod q by square-and-multiply.
func (a Felt) Pow(e uint32) Felt {
	result := Felt(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// Inv returns a^-1 mod q via Fermat's little theorem (a^(q-2)); callers
// must only call this on non-zero elements (an invertibility precondition
// enforced upstream, e.g. §4.5 step 2).
func (a Felt) Inv() Felt {
	return a.Pow(Q - 2)
}

// Int returns the centred representative of a in (-q/2, q/2].
func (a Felt) Int() int32 {
	v := int32(a)
	if v > Q/2 {
		v -= Q
	}
	return v
}
