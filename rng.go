package falcon

import (
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/chacha20"
)

// rng.go supplies the two places this core consumes randomness (§6): a
// deterministic PRF for keygen, derived from the caller's 32-byte seed, and
// a plain io.Reader-shaped stream for signing, whose bytes are consumed in
// the exact order §9's "Random number consumption is a contract" demands
// (salt first, then per SamplerZ attempt the base-sampler bytes, the sign
// byte, and the Bernoulli-check bytes).

// RNG is the byte source Sign consumes. Any io.Reader satisfies it; the
// core never calls crypto/rand itself so that fixing the byte stream fixes
// the signature (§6, §8 property 6).
type RNG = io.Reader

// seedPRF expands a 32-byte keygen seed into a deterministic byte stream
// using ChaCha20 as a PRF (§6: "seed drives an internal deterministic PRF
// (ChaCha20 stream)"), keyed by the seed with a fixed zero nonce — keygen
// determinism is internal-only (§6), so reusing a zero nonce under a
// seed-derived key is exactly the intended keystream, never reused across
// distinct external contexts.
func seedPRF(seed [32]byte) (io.Reader, error) {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "falcon: chacha20 PRF init")
	}
	return &chachaStream{cipher: cipher}, nil
}

// chachaStream turns a *chacha20.Cipher (which only exposes XORKeyStream)
// into an io.Reader that emits raw keystream bytes, by encrypting a zero
// buffer in place.
type chachaStream struct {
	cipher *chacha20.Cipher
}

func (s *chachaStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// readFull reads exactly len(buf) bytes from r, wrapping any error.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return errors.Wrap(err, "falcon: short read from RNG")
	}
	return nil
}
