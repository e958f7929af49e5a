package falcon

import (
	"math/rand"
	"testing"
)

// TestCompressDecompressRoundTrip checks §8 property 4: for short vectors,
// decompress(compress(v)) = v, and recompressing yields identical bytes.
func TestCompressDecompressRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 64
		v := make([]int64, n)
		for i := range v {
			v[i] = r.Int63n(4096) - 2048
		}
		encoded, err := compressSig(v)
		if err != nil {
			t.Fatalf("trial %d: compressSig error: %v", trial, err)
		}
		decoded, err := decompressSig(encoded, n)
		if err != nil {
			t.Fatalf("trial %d: decompressSig error: %v", trial, err)
		}
		for i := range v {
			if decoded[i] != v[i] {
				t.Fatalf("trial %d: coefficient %d: got %d want %d", trial, i, decoded[i], v[i])
			}
		}
		reencoded, err := compressSig(decoded)
		if err != nil {
			t.Fatalf("trial %d: recompress error: %v", trial, err)
		}
		if len(reencoded) != len(encoded) {
			t.Fatalf("trial %d: recompress length mismatch", trial)
		}
		for i := range encoded {
			if reencoded[i] != encoded[i] {
				t.Fatalf("trial %d: recompress byte %d mismatch", trial, i)
			}
		}
	}
}

func TestCompressOverflow(t *testing.T) {
	v := []int64{int64(1) << 20}
	if _, err := compressSig(v); err == nil {
		t.Fatal("expected compressSig to reject an oversized coefficient")
	}
}

// TestCompressSigToBudgetRejectsOversizedPayload covers the total-length
// half of §4.6 step 4's compression budget: a payload that satisfies every
// per-coefficient unary-run bound can still be too long to fit
// sig_len-41 bytes, and compressSigToBudget must reject that case too (not
// just the per-coefficient overflow compressSig alone can detect).
func TestCompressSigToBudgetRejectsOversizedPayload(t *testing.T) {
	p := NewParams512()
	// Each coefficient near the unary-run cap costs up to 1+7+95+1 = 104
	// bits (13 bytes); enough of them blow well past SigBytes-1-saltLen
	// while each individually stays within maxUnaryRun.
	n := p.SigBytes // more coefficients than the budget has bytes for
	v := make([]int64, n)
	for i := range v {
		v[i] = (maxUnaryRun << 7) | 0x7f // largest value compressSig accepts
	}
	if _, err := compressSigToBudget(v, p); err == nil {
		t.Fatal("expected compressSigToBudget to reject a payload exceeding the fixed signature length")
	}
	// The same vector must still pass compressSig alone: the overflow is in
	// total length, not any single coefficient.
	if _, err := compressSig(v); err != nil {
		t.Fatalf("compressSig should accept each coefficient individually: %v", err)
	}
}

func TestDecompressRejectsTruncatedInput(t *testing.T) {
	v := []int64{1, 2, 3, -4}
	encoded, err := compressSig(v)
	if err != nil {
		t.Fatalf("compressSig error: %v", err)
	}
	if _, err := decompressSig(encoded[:len(encoded)-1], len(v)); err == nil {
		t.Fatal("expected decompressSig to reject truncated input")
	}
}

func TestDecompressRejectsSetPaddingBit(t *testing.T) {
	// v={0} encodes to 9 bits (sign + 7 low bits + terminator), padded out
	// to 2 bytes: 7 bits of guaranteed zero padding follow.
	encoded, err := compressSig([]int64{0})
	if err != nil {
		t.Fatalf("compressSig error: %v", err)
	}
	if len(encoded) != 2 {
		t.Fatalf("expected a 2-byte encoding for one zero coefficient, got %d bytes", len(encoded))
	}
	corrupted := make([]byte, len(encoded))
	copy(corrupted, encoded)
	corrupted[1] |= 0x01 // set the final padding bit
	if _, err := decompressSig(corrupted, 1); err == nil {
		t.Fatal("expected decompressSig to reject a set padding bit")
	}
}

func TestDecompressRejectsNegativeZero(t *testing.T) {
	w := &bitWriter{}
	w.writeBit(1) // sign = 1
	w.writeBits(0, 7) // low = 0
	w.writeBit(0)     // high run terminator immediately: high = 0
	payload := w.pad()

	if _, err := decompressSig(payload, 1); err == nil {
		t.Fatal("expected decompressSig to reject the negative-zero encoding")
	}
}
