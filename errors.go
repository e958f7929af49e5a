package falcon

import "github.com/cockroachdb/errors"

// Sentinel errors of this package. The *FromBytes parsers, the compressor,
// and the GenerateKey/Sign retry caps wrap one of these with errors.Wrap so
// a caller can test with errors.Is across the wrapped context, per §7 of the
// design. RNG read failures are wrapped I/O errors, not sentinels, and
// Verify reports failure only as `false`.
var (
	// ErrMalformedKey is returned by PrivateKeyFromBytes/PublicKeyFromBytes
	// when the input is not a well-formed encoding for the claimed parameter
	// set.
	ErrMalformedKey = errors.New("falcon: malformed key encoding")

	// ErrMalformedSignature is returned by SignatureFromBytes (via
	// decompressSig) for a malformed signature encoding.
	ErrMalformedSignature = errors.New("falcon: malformed signature encoding")

	// ErrWrongHeader is returned when a header byte does not match the
	// expected `kind | logn` tag for the parameter set in use.
	ErrWrongHeader = errors.New("falcon: unexpected header byte")

	// ErrNormExceeded names the condition ||s1||^2+||s2||^2 > bound (§4.6
	// step 3). No function in this package returns it: Sign checks the bound
	// inline, retries, and returns ErrSignFailed once its cap is exhausted.
	ErrNormExceeded = errors.New("falcon: signature norm exceeds bound")

	// ErrCompressOverflow is the internal retry trigger when the compressed
	// encoding of s2 does not fit the fixed signature budget (§4.6 step 4).
	ErrCompressOverflow = errors.New("falcon: compressed signature overflows budget")

	// ErrKeyGenFailed signals that NTRU key generation exhausted its retry
	// cap (§4.5, §7 "Internal cap exhausted").
	ErrKeyGenFailed = errors.New("falcon: key generation failed to converge")

	// ErrSignFailed signals that the signing retry loop exhausted its cap
	// (§4.6, §7 "Internal cap exhausted").
	ErrSignFailed = errors.New("falcon: signing failed to converge")

	// ErrNotInvertible names the condition that f is not invertible in R_q
	// (§4.5 step 2). No function in this package returns it: keygen retries on
	// invertibleModQ's false result, and PrivateKeyFromBytes reports a
	// non-invertible f as ErrMalformedKey.
	ErrNotInvertible = errors.New("falcon: f not invertible in R_q")
)
