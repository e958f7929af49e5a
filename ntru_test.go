package falcon

import (
	"math/rand"
	"testing"
)

func TestXgcdBezout(t *testing.T) {
	cases := [][2]int64{{240, 46}, {17, 5}, {7, 1}, {-12, 8}, {1, 1}}
	for _, c := range cases {
		a, b := c[0], c[1]
		d, u, v := xgcd(a, b)
		if got := u*a + v*b; got != d {
			t.Fatalf("xgcd(%d,%d): u*a+v*b = %d, want d=%d", a, b, got, d)
		}
	}
}

// TestNtruSolveSatisfiesEquation checks §8 property 8: whenever ntruSolve
// succeeds, f*G - g*F = q holds exactly as integer polynomials.
func TestNtruSolveSatisfiesEquation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	successes := 0
	for trial := 0; trial < 200; trial++ {
		n := 8
		f := randomIntPoly(n, 3, r)
		g := randomIntPoly(n, 3, r)

		bigF, bigG, ok := ntruSolve(f, g)
		if !ok {
			continue
		}
		successes++

		lhs := f.MulKaratsuba(bigG).Sub(g.MulKaratsuba(bigF))
		for i, c := range lhs {
			want := int64(0)
			if i == 0 {
				want = Q
			}
			if c != want {
				t.Fatalf("trial %d: f*G-g*F[%d] = %d, want %d", trial, i, c, want)
			}
		}
	}
	if successes == 0 {
		t.Fatal("ntruSolve never succeeded across 200 trials; base case or descent is broken")
	}
}

func TestGsNormOK(t *testing.T) {
	small := IntPoly{1, 0, -1, 0}
	huge := make(IntPoly, 4)
	for i := range huge {
		huge[i] = 100000
	}
	if !gsNormOK(small, small) {
		t.Error("expected small polynomials to pass the Gram-Schmidt norm bound")
	}
	if gsNormOK(huge, huge) {
		t.Error("expected huge polynomials to fail the Gram-Schmidt norm bound")
	}
}

func TestInvertibleModQ(t *testing.T) {
	p := NewParams512()
	one := make(IntPoly, p.N)
	one[0] = 1
	if !p.invertibleModQ(one) {
		t.Error("the constant polynomial 1 must be invertible mod q")
	}
	zero := make(IntPoly, p.N)
	if p.invertibleModQ(zero) {
		t.Error("the zero polynomial must not be invertible mod q")
	}
}
