package optimization

import (
	"math"
	"math/rand"
	"testing"
)

func TestResample_SeededRunsAreDeterministic(t *testing.T) {
	assets, corr := twoAssetSetup()

	run := func() []float64 {
		opts := ResampleOptions{
			NumResamples: 10,
			ReturnNoise:  0.02,
			Rand:         rand.New(rand.NewSource(42)),
		}
		points := Resample(assets, corr, nil, opts)
		out := make([]float64, 0, 2*len(points))
		for _, p := range points {
			out = append(out, p.Risk, p.Return)
		}
		return out
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d values", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("value %d differs between seeded runs: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestResample_ZeroNoiseMatchesDirectSolves(t *testing.T) {
	assets, corr := twoAssetSetup()
	cov := BuildCovariance(assets, corr)
	cs := Assemble(assets, nil)
	baseReturns := returnsVector(assets)

	grid := ResampleLambdaGrid()
	var expected []struct{ risk, ret float64 }
	for _, lambda := range grid {
		res, err := Solve(lambda, baseReturns, cov, cs)
		if err != nil {
			t.Fatalf("lambda=%g: %v", lambda, err)
		}
		expected = append(expected, struct{ risk, ret float64 }{res.Risk, res.Return})
	}

	opts := ResampleOptions{
		NumResamples: 3,
		ReturnNoise:  0,
		Rand:         rand.New(rand.NewSource(1)),
	}
	points := Resample(assets, corr, nil, opts)
	if len(points) != opts.NumResamples*len(grid) {
		t.Fatalf("expected %d points, got %d", opts.NumResamples*len(grid), len(points))
	}
	for i, p := range points {
		want := expected[i%len(grid)]
		if math.Abs(p.Risk-want.risk) > 1e-9 || math.Abs(p.Return-want.ret) > 1e-9 {
			t.Errorf("point %d: got (%g, %g), want (%g, %g)", i, p.Risk, p.Return, want.risk, want.ret)
		}
	}
}

func TestResample_CountBound(t *testing.T) {
	assets, corr := twoAssetSetup()
	opts := ResampleOptions{
		NumResamples: 5,
		ReturnNoise:  0.02,
		Rand:         rand.New(rand.NewSource(7)),
	}

	points := Resample(assets, corr, nil, opts)
	limit := opts.NumResamples * len(ResampleLambdaGrid())
	if len(points) == 0 || len(points) > limit {
		t.Errorf("expected between 1 and %d points, got %d", limit, len(points))
	}
}

func TestResample_SmallNoiseStaysNearBase(t *testing.T) {
	assets, corr := twoAssetSetup()
	cov := BuildCovariance(assets, corr)
	cs := Assemble(assets, nil)
	baseReturns := returnsVector(assets)

	grid := ResampleLambdaGrid()
	base := make([]float64, len(grid))
	for i, lambda := range grid {
		res, err := Solve(lambda, baseReturns, cov, cs)
		if err != nil {
			t.Fatalf("lambda=%g: %v", lambda, err)
		}
		base[i] = res.Return
	}

	opts := ResampleOptions{
		NumResamples: 20,
		ReturnNoise:  0.001,
		Rand:         rand.New(rand.NewSource(3)),
	}
	points := Resample(assets, corr, nil, opts)
	if len(points) != opts.NumResamples*len(grid) {
		t.Fatalf("expected %d points, got %d", opts.NumResamples*len(grid), len(points))
	}
	for i, p := range points {
		want := base[i%len(grid)]
		if math.Abs(p.Return-want) > 0.03 {
			t.Errorf("point %d: resampled return %g drifted far from base %g under tiny noise", i, p.Return, want)
		}
	}
}

func TestResample_DegenerateUniverse(t *testing.T) {
	assets, corr := twoAssetSetup()
	if points := Resample(assets[:1], corr, nil, ResampleOptions{NumResamples: 3}); points != nil {
		t.Errorf("expected nil scatter for a single asset, got %d points", len(points))
	}
}
