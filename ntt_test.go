package falcon

import (
	"math/rand"
	"testing"
)

func randomFelts(n int, r *rand.Rand) []Felt {
	out := make([]Felt, n)
	for i := range out {
		out[i] = Felt(r.Intn(Q))
	}
	return out
}

func TestNTTRoundTrip(t *testing.T) {
	for _, n := range []int{512, 1024} {
		p := paramsForN(t, n)
		r := rand.New(rand.NewSource(int64(n)))
		a := randomFelts(n, r)
		got := p.INTT(p.NTT(a))
		for i := range a {
			if got[i] != a[i] {
				t.Fatalf("n=%d: INTT(NTT(a))[%d] = %d, want %d", n, i, got[i], a[i])
			}
		}
	}
}

// TestNTTMatchesSchoolbook checks property 6 of §8: iNTT(NTT(a) ⊙ NTT(b)) =
// a*b mod (x^n+1, q).
func TestNTTMatchesSchoolbook(t *testing.T) {
	for _, n := range []int{512, 1024} {
		p := paramsForN(t, n)
		r := rand.New(rand.NewSource(int64(n) + 1))
		a := randomFelts(n, r)
		b := randomFelts(n, r)

		got := p.MulModQ(a, b)

		aInt := make(IntPoly, n)
		bInt := make(IntPoly, n)
		for i := range aInt {
			aInt[i] = int64(a[i])
			bInt[i] = int64(b[i])
		}
		want := aInt.MulSchoolbook(bInt).ToFelt()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: MulModQ mismatch at %d: got %d want %d", n, i, got[i], want[i])
			}
		}
	}
}

func paramsForN(t *testing.T, n int) *Params {
	t.Helper()
	switch n {
	case 512:
		return NewParams512()
	case 1024:
		return NewParams1024()
	default:
		t.Fatalf("unsupported n %d", n)
		return nil
	}
}
