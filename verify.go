package falcon

// verify.go implements Verify (§4.7): a total predicate — never returns an
// error or panics on malformed input, only true/false — that recomputes s1
// from s2, h, and the hashed point, then checks the norm bound.

// Verify reports whether sig is a valid Falcon signature over msg under pk.
func Verify(msg []byte, sig *Signature, pk *PublicKey) bool {
	p := pk.Params
	if sig.Params == nil || sig.Params.N != p.N || len(sig.S2) != p.N {
		return false
	}

	c := p.HashToPoint(sig.Salt[:], msg)

	s2Felt := make([]Felt, p.N)
	for i, v := range sig.S2 {
		s2Felt[i] = NewFelt(int32(v % Q))
	}
	s2h := p.MulModQ(s2Felt, pk.H)

	s1Felt := make([]Felt, p.N)
	for i := range s1Felt {
		s1Felt[i] = c[i].Sub(s2h[i])
	}

	var normSq int64
	for i := range s1Felt {
		v := int64(s1Felt[i].Int())
		normSq += v * v
	}
	for _, v := range sig.S2 {
		normSq += v * v
	}

	return normSq <= p.SigBound
}
