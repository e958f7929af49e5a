package falcon

import (
	"math/rand"
	"testing"
)

func TestBuildTreeLeavesHavePositiveSigma(t *testing.T) {
	p := NewParams512()
	r := rand.New(rand.NewSource(21))

	// A synthetic, well-conditioned basis: f=1, g small random, F=0, G=q
	// (trivially satisfies f*G - g*F = q) exercises BuildTree's recursion
	// without requiring a full NTRU keygen run in this test.
	f := make(IntPoly, p.N)
	f[0] = 1
	g := randomIntPoly(p.N, 2, r)
	bigF := make(IntPoly, p.N)
	bigG := make(IntPoly, p.N)
	bigG[0] = Q

	tree := p.BuildTree(f, g, bigF, bigG)
	checkTreeSigmas(t, tree, p.N)
}

func checkTreeSigmas(t *testing.T, node *treeNode, m int) {
	t.Helper()
	if node.leaf {
		if node.sigma0 <= 0 || node.sigma1 <= 0 {
			t.Fatalf("leaf sigmas must be positive, got %v, %v", node.sigma0, node.sigma1)
		}
		return
	}
	if len(node.ell) != m {
		t.Fatalf("node ell length = %d, want %d", len(node.ell), m)
	}
	checkTreeSigmas(t, node.left, m/2)
	checkTreeSigmas(t, node.right, m/2)
}
