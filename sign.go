package falcon

import (
	"github.com/cockroachdb/errors"
	"github.com/eth2030/falcon/internal/log"
)

// sign.go implements Sign (§4.6): hash the salted message to a point c,
// sample a close lattice vector via ffSampling over the private tree, and
// emit the compressed signature once the norm bound is satisfied.

const saltLen = 40

// maxSignAttempts bounds the internal retry loop (§4.6 step 3/4: resample
// via ffSampling, keeping the same salt and hashed point, when the
// candidate signature exceeds the norm bound, overflows a single
// coefficient's per-coefficient unary-run budget, or the resulting payload
// doesn't fit the parameter set's fixed sig_len-41 byte budget).
const maxSignAttempts = 4096

var signLogger = log.Default().Module("sign")

// scaleFFT multiplies every FFT-form coefficient by a real scalar.
func scaleFFT(a []complex128, s float64) []complex128 {
	out := make([]complex128, len(a))
	for i, v := range a {
		out[i] = v * complex(s, 0)
	}
	return out
}

// Sign produces a signature over msg under sk, drawing the salt and the
// sampler's randomness from rng (§4.6, §9 "random number consumption is a
// contract").
func Sign(msg []byte, sk *PrivateKey, rng RNG) (*Signature, error) {
	p := sk.Params
	fFFT := p.FFT(sk.F.ToFloat64())
	bigFFFT := p.FFT(sk.BigF.ToFloat64())

	sampler := newGaussianSampler(rng)
	roots := p.fftRootsTable()

	// Step 1-2 (§4.6): the salt and hashed point are drawn once, outside the
	// retry loop; only the ffSampling draw, norm check, and compression are
	// retried (step 3's "restart from step 3" leaves the salt fixed).
	var salt [saltLen]byte
	if err := readFull(rng, salt[:]); err != nil {
		return nil, err
	}
	c := p.HashToPoint(salt[:], msg)
	cInt := sk.ws.cInt
	for i, v := range c {
		cInt[i] = int64(v.Int())
	}
	cFFT := p.FFT(cInt.ToFloat64())
	t0 := scaleFFT(MulFFT(cFFT, bigFFFT), -1/float64(Q))
	t1 := scaleFFT(MulFFT(cFFT, fFFT), 1/float64(Q))

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		z0FFT, z1FFT, err := ffSampling(t0, t1, sk.tree, sampler, p.SigMin, roots)
		if err != nil {
			return nil, err
		}
		z0 := RoundIntPoly(p.IFFT(z0FFT))
		z1 := RoundIntPoly(p.IFFT(z1FFT))

		s1 := cInt.Sub(z0.MulKaratsuba(sk.G)).Sub(z1.MulKaratsuba(sk.BigG))
		s2 := z0.MulKaratsuba(sk.F).Add(z1.MulKaratsuba(sk.BigF))

		normSq := s1.NormSquared() + s2.NormSquared()
		if normSq > p.SigBound {
			signLogger.Debug("candidate signature exceeded norm bound, retrying", "attempt", attempt)
			continue
		}

		if _, err := compressSigToBudget(s2, p); err != nil {
			signLogger.Debug("candidate signature overflowed the compression budget, retrying", "attempt", attempt)
			continue
		}

		return &Signature{Params: p, Salt: salt, S2: []int64(s2)}, nil
	}
	return nil, errors.Wrap(ErrSignFailed, "exhausted retry budget")
}
