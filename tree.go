package falcon

import "math"

// tree.go builds the Falcon tree T (§4.5 step 4, §3 GLOSSARY "Falcon tree")
// via a recursive LDL* decomposition of the private NTRU Gram matrix in FFT
// form, and implements ffSampling (§4.6 step 3), the recursive Gaussian
// sampler over that tree.
//
// Representation: tagged variant, per the §9 design note's first option —
// internal nodes carry the off-diagonal "ell" FFT-form array (length
// n/2^depth) and two children; leaves carry the two real leaf-sigma values
// directly (the terminal LDL step's off-diagonal is never consulted by
// ffSampling, so it is not stored).
type treeNode struct {
	leaf bool

	// valid when leaf
	sigma0, sigma1 float64

	// valid when !leaf
	ell         []complex128
	left, right *treeNode
}

// gram holds the 2x2 private Gram matrix B*B^T in FFT form, where B is the
// basis [[g,-f],[G,-F]] (row-major, FFT form arrays of length n).
type gram struct {
	g00, g01, g11 []complex128 // g10 = conj(g01), Hermitian, not stored
}

// buildGram forms the top-level Gram matrix from the four NTRU polynomials.
func (p *Params) buildGram(f, g, bigF, bigG IntPoly) gram {
	ff := p.FFT(f.ToFloat64())
	fg := p.FFT(g.ToFloat64())
	fF := p.FFT(bigF.ToFloat64())
	fG := p.FFT(bigG.ToFloat64())

	g00 := AddFFT(MulFFT(fg, AdjFFT(fg)), MulFFT(ff, AdjFFT(ff)))
	g01 := AddFFT(MulFFT(fg, AdjFFT(fG)), MulFFT(ff, AdjFFT(fF)))
	g11 := AddFFT(MulFFT(fG, AdjFFT(fG)), MulFFT(fF, AdjFFT(fF)))
	return gram{g00: g00, g01: g01, g11: g11}
}

// BuildTree runs the recursive LDL* decomposition (§4.5 step 4) and returns
// the root of the Falcon tree.
func (p *Params) BuildTree(f, g, bigF, bigG IntPoly) *treeNode {
	gm := p.buildGram(f, g, bigF, bigG)
	return buildTreeNode(gm.g00, gm.g01, gm.g11, p.Sigma, p.fftRootsTable())
}

// buildTreeNode performs one LDL* step on the 2x2 Hermitian matrix
// [[g00,g01],[conj(g01),g11]] (all entries length m, the current level's
// FFT length), storing the off-diagonal "ell" and recursing into the two
// Schur complements split in half via the FFT split operator (§4.5 step 4,
// §9 design note on the tagged-variant tree).
func buildTreeNode(g00, g01, g11 []complex128, sigma float64, roots *fftRoots) *treeNode {
	m := len(g00)
	ell := DivFFT(g01, g00)
	d00 := g00
	d11 := SubFFT(g11, MulFFT(MulFFT(ell, AdjFFT(ell)), g00))

	if m == 1 {
		return &treeNode{
			leaf:   true,
			sigma0: sigma / math.Sqrt(real(d00[0])),
			sigma1: sigma / math.Sqrt(real(d11[0])),
		}
	}

	rs := roots.byLength[m]
	d00a, d00b := splitFFT(d00, rs)
	d11a, d11b := splitFFT(d11, rs)

	left := buildTreeNode(d00a, d00b, d00a, sigma, roots)
	right := buildTreeNode(d11a, d11b, d11a, sigma, roots)
	return &treeNode{ell: ell, left: left, right: right}
}

// ffSampling descends T to sample (z0, z1) such that z = (z0,z1) is close,
// in the Gaussian sense T encodes, to the target t = (t0,t1) (§4.6 step 3).
// Both t0, t1 and the returned z0, z1 are FFT-form arrays of equal length.
func ffSampling(t0, t1 []complex128, node *treeNode, sampler *gaussianSampler, sigmin float64, roots *fftRoots) (z0, z1 []complex128, err error) {
	if node.leaf {
		v0, err := sampler.SamplerZ(real(t0[0]), node.sigma0, sigmin)
		if err != nil {
			return nil, nil, err
		}
		v1, err := sampler.SamplerZ(real(t1[0]), node.sigma1, sigmin)
		if err != nil {
			return nil, nil, err
		}
		return []complex128{complex(float64(v0), 0)}, []complex128{complex(float64(v1), 0)}, nil
	}

	m := len(t0)
	rs := roots.byLength[m]

	t1a, t1b := splitFFT(t1, rs)
	z1a, z1b, err := ffSampling(t1a, t1b, node.right, sampler, sigmin, roots)
	if err != nil {
		return nil, nil, err
	}
	z1 = mergeFFT(z1a, z1b, rs)

	correction := MulFFT(SubFFT(t1, z1), node.ell)
	t0corrected := AddFFT(t0, correction)
	t0a, t0b := splitFFT(t0corrected, rs)
	z0a, z0b, err := ffSampling(t0a, t0b, node.left, sampler, sigmin, roots)
	if err != nil {
		return nil, nil, err
	}
	z0 = mergeFFT(z0a, z0b, rs)

	return z0, z1, nil
}
