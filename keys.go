package falcon

import (
	"github.com/cockroachdb/errors"
	"github.com/eth2030/falcon/internal/log"
)

// keys.go ties the field/ring, NTRU solver, and tree machinery together into
// the four public operations (§4.1, §4.5-§4.7, §6): GenerateKey, Sign,
// Verify, and the PrivateKey/PublicKey/Signature types those return.

// PrivateKey holds the NTRU basis (f,g,F,G) and the precomputed Falcon tree
// used to sample signatures (§4.5, §6 secret-key encoding).
type PrivateKey struct {
	Params *Params

	F, G, BigF, BigG IntPoly
	tree             *treeNode
	ws               *Workspace
}

// PublicKey holds h = g*f^-1 mod q, the public NTRU lattice basis (§6).
type PublicKey struct {
	Params *Params
	H      []Felt
}

// Signature holds the 40-byte salt and the decompressed s2 coefficients (s1
// is implicit, recovered by Verify); ToBytes compresses s2 (§4.8, §6).
type Signature struct {
	Params *Params
	Salt   [40]byte
	S2     []int64 // decompressed s2 coefficients, centred representatives
}

// maxKeygenAttempts bounds the keygen retry loop (§4.5 step 1's "restart on
// norm/invertibility failure"); a fresh seed exhausting this many attempts
// indicates a systemic RNG problem rather than ordinary bad luck.
const maxKeygenAttempts = 4096

var keygenLogger = log.Default().Module("keygen")

// GenerateKey derives a Falcon keypair deterministically from a 32-byte
// seed (§6: "seed drives an internal deterministic PRF").
func GenerateKey(seed [32]byte, params *Params) (*PrivateKey, *PublicKey, error) {
	rng, err := seedPRF(seed)
	if err != nil {
		return nil, nil, err
	}
	sampler := newGaussianSampler(rng)
	sigma := params.sigmaFG()

	for attempt := 0; attempt < maxKeygenAttempts; attempt++ {
		f, err := sampleShortPoly(params.N, sigma, sampler, params.SigMin)
		if err != nil {
			return nil, nil, err
		}
		g, err := sampleShortPoly(params.N, sigma, sampler, params.SigMin)
		if err != nil {
			return nil, nil, err
		}
		if !gsNormOK(f, g) {
			keygenLogger.Debug("candidate f,g failed the Gram-Schmidt norm bound, retrying", "attempt", attempt)
			continue
		}
		if !params.invertibleModQ(f) {
			keygenLogger.Debug("candidate f not invertible mod q, retrying", "attempt", attempt)
			continue
		}
		bigF, bigG, ok := ntruSolve(f, g)
		if !ok {
			keygenLogger.Debug("ntruSolve failed to converge, retrying", "attempt", attempt)
			continue
		}
		if !gsNormOK(bigF, bigG) {
			keygenLogger.Debug("candidate F,G failed the Gram-Schmidt norm bound, retrying", "attempt", attempt)
			continue
		}

		tree := params.BuildTree(f, g, bigF, bigG)
		h := params.computeH(f, g)

		sk := &PrivateKey{Params: params, F: f, G: g, BigF: bigF, BigG: bigG, tree: tree, ws: NewWorkspace(params.N)}
		pk := &PublicKey{Params: params, H: h}
		return sk, pk, nil
	}
	return nil, nil, errors.Wrap(ErrKeyGenFailed, "exhausted retry budget")
}

// computeH derives h = g * f^-1 mod q via pointwise NTT-domain inversion
// (exact field arithmetic, no rounding).
func (p *Params) computeH(f, g IntPoly) []Felt {
	fNTT := p.NTT(f.ToFelt())
	gNTT := p.NTT(g.ToFelt())
	hNTT := make([]Felt, p.N)
	for i := range hNTT {
		hNTT[i] = gNTT[i].Mul(fNTT[i].Inv())
	}
	return p.INTT(hNTT)
}
