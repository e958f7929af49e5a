package falcon

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// vectors_test.go decodes fixed hex test vectors the way the teacher's own
// table-driven tests do, via common/hexutil, rather than embedding raw byte
// literals in the test source.
var fixedSaltHex = "0x" +
	"3031323334353637383930313233343536373839" +
	"3031323334353637383930313233343536373839"

func TestHashToPointAgainstFixedSaltVector(t *testing.T) {
	salt := hexutil.MustDecode(fixedSaltHex)
	if len(salt) != saltLen {
		t.Fatalf("fixed salt vector decoded to %d bytes, want %d", len(salt), saltLen)
	}

	p := NewParams512()
	msg := []byte("Hello, Falcon!")

	a := p.HashToPoint(salt, msg)
	b := p.HashToPoint(salt, msg)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("HashToPoint over the fixed vector is not deterministic at %d", i)
		}
	}

	reencoded := hexutil.Encode(salt)
	if reencoded != fixedSaltHex {
		t.Fatalf("hexutil round trip mismatch: got %s, want %s", reencoded, fixedSaltHex)
	}
}
