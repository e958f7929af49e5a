package falcon

import (
	"math"
	"math/rand"
	"testing"
)

func TestSamplerZWithinGenerousRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sampler := newGaussianSampler(rng)
	const mu = 3.5
	const sigma = 1.5
	const sigmin = 1.2

	for i := 0; i < 2000; i++ {
		z, err := sampler.SamplerZ(mu, sigma, sigmin)
		if err != nil {
			t.Fatalf("SamplerZ error: %v", err)
		}
		if math.Abs(float64(z)-mu) > 30*sigma {
			t.Fatalf("sample %d = %d is absurdly far from mu=%v (sigma=%v)", i, z, mu, sigma)
		}
	}
}

func TestSamplerZMeanIsRoughlyCentred(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sampler := newGaussianSampler(rng)
	const mu = -2.25
	const sigma = 1.7
	const sigmin = 1.2

	const trials = 20000
	var sum float64
	for i := 0; i < trials; i++ {
		z, err := sampler.SamplerZ(mu, sigma, sigmin)
		if err != nil {
			t.Fatalf("SamplerZ error: %v", err)
		}
		sum += float64(z)
	}
	mean := sum / trials
	// Standard error of the mean is ~sigma/sqrt(trials); allow a generous
	// 10-sigma-of-the-mean window to keep this test from flaking.
	se := sigma / math.Sqrt(trials)
	if math.Abs(mean-mu) > 10*se {
		t.Fatalf("sample mean %v too far from mu=%v (se=%v)", mean, mu, se)
	}
}

func TestBaseSamplerRange(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	sampler := newGaussianSampler(rng)
	for i := 0; i < 1000; i++ {
		z0, err := sampler.baseSampler()
		if err != nil {
			t.Fatalf("baseSampler error: %v", err)
		}
		if z0 < 0 || z0 > len(rcdt) {
			t.Fatalf("baseSampler() = %d out of expected [0,%d] range", z0, len(rcdt))
		}
	}
}
