package falcon

import "math"

// Package falcon implements the NIST PQC standard Falcon digital signature
// scheme in its two parameterisations, Falcon-512 and Falcon-1024, producing
// signatures and keys interoperable with other conforming implementations.
//
// The four operations a caller needs are GenerateKey, Sign, Verify, and the
// byte (de)serialisers on PrivateKey/PublicKey/Signature. Everything else in
// this package — NTT, the complex FFT, the discrete Gaussian sampler, the
// NTRU solver, the Falcon tree, and the compressor — is internal machinery
// that those four operations assemble.

// LogN selects a Falcon parameterisation by log2 of the ring dimension.
type LogN uint8

const (
	// LogN512 selects Falcon-512 (n=512).
	LogN512 LogN = 9
	// LogN1024 selects Falcon-1024 (n=1024).
	LogN1024 LogN = 10
)

// Q is the NTRU/NTT prime modulus shared by both parameterisations.
const Q = 12289

// Params holds every constant that varies between Falcon-512 and
// Falcon-1024. A Params value never mutates after construction, so it is
// safe to share across goroutines.
type Params struct {
	LogN LogN
	N    int // ring dimension, 512 or 1024

	Sigma    float64 // standard deviation used during ffSampling / keygen
	SigMin   float64 // minimum leaf sigma (§4.4)
	SigMax   float64 // RCDT sigma used by the base sampler
	SigBound int64    // floor(beta^2), the squared-norm bound on (s1, s2)

	SecKeyBytes int
	PubKeyBytes int
	SigBytes    int

	// FGWidth is the signed bit width used to pack f and g coefficients in
	// the secret-key encoding (§6): 6 bits for n=512, 5 bits for n=1024.
	FGWidth uint
}

// sigmaFG is the standard deviation used when sampling f, g during NTRU key
// generation: 1.17 * sqrt(q / 2n) (§4.5 step 1).
func (p *Params) sigmaFG() float64 {
	return 1.17 * math.Sqrt(float64(Q)/(2*float64(p.N)))
}

// gsNormBound is the Gram-Schmidt upper bound 1.17*sqrt(q) used to reject
// (f, g) pairs during keygen (§4.5 step 1). It does not depend on n.
func gsNormBound() float64 {
	return 1.17 * math.Sqrt(float64(Q))
}

// NewParams512 returns the Falcon-512 parameter set.
func NewParams512() *Params {
	return &Params{
		LogN:        LogN512,
		N:           512,
		Sigma:       165.7366171829776,
		SigMin:      1.2778336969128337,
		SigMax:      1.8205,
		SigBound:    34034726,
		SecKeyBytes: 1281,
		PubKeyBytes: 897,
		SigBytes:    666,
		FGWidth:     6,
	}
}

// NewParams1024 returns the Falcon-1024 parameter set.
func NewParams1024() *Params {
	return &Params{
		LogN:        LogN1024,
		N:           1024,
		Sigma:       168.38857144654395,
		SigMin:      1.298280334344292,
		SigMax:      1.8205,
		SigBound:    70265242,
		SecKeyBytes: 2305,
		PubKeyBytes: 1793,
		SigBytes:    1280,
		FGWidth:     5,
	}
}

// headerByte returns the 1-byte header value `0x30 | logn`-style tag used
// across sk/pk/sig encodings (§6), parameterised by the given high nibble.
func (p *Params) headerByte(highNibble byte) byte {
	return (highNibble << 4) | byte(p.LogN)
}

const (
	pkHeaderNibble  = 0x0
	skHeaderNibble  = 0x5
	sigHeaderNibble = 0x3
)
