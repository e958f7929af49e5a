package falcon

import "golang.org/x/crypto/sha3"

// hash.go implements HashToPoint (§4.6 step 2, §4.7 step 3, §9): a
// deterministic map from salt||msg to a uniform polynomial in R_q, built by
// squeezing 16-bit big-endian values out of a SHAKE-256 stream and
// rejecting anything that would bias the result mod q.
//
// k = floor(2^16/q) = 5; values >= k*q = 61445 are rejected so that the
// accepted values, reduced mod q, are exactly uniform over [0, q). This
// extractor-with-rejection protocol is part of the wire contract: an
// off-by-one in the rejection bound desynchronises verification against
// any other conforming implementation.
const hashToPointRejectBound = 5 * Q

// HashToPoint derives a length-n polynomial over Fq from salt||msg.
func (p *Params) HashToPoint(salt, msg []byte) []Felt {
	h := sha3.NewShake256()
	h.Write(salt)
	h.Write(msg)

	out := make([]Felt, p.N)
	var buf [2]byte
	collected := 0
	for collected < p.N {
		h.Read(buf[:])
		v := uint16(buf[0])<<8 | uint16(buf[1])
		if uint32(v) >= hashToPointRejectBound {
			continue
		}
		out[collected] = Felt(uint32(v) % Q)
		collected++
	}
	return out
}
