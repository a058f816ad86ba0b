package optimization

import (
	"math"
	"testing"

	"github.com/awheeler/frontier/internal/models"
)

func TestGenerate_TwoAssetFrontier(t *testing.T) {
	assets, corr := twoAssetSetup()

	frontier := Generate(assets, corr, nil, 30)

	if len(frontier.Points) == 0 {
		t.Fatal("expected a non-empty frontier")
	}
	if frontier.SkippedSamples != 0 {
		t.Errorf("expected no skipped samples for a benign universe, got %d", frontier.SkippedSamples)
	}
	if len(frontier.Assets) != 2 {
		t.Errorf("expected 2 asset names, got %d", len(frontier.Assets))
	}

	for i, p := range frontier.Points {
		// Risk must land between the minimum-variance mix and full equity.
		if p.Risk < 0.045 || p.Risk > 0.21 {
			t.Errorf("point %d: risk %g outside achievable range", i, p.Risk)
		}
		var sum float64
		for _, w := range p.Allocations {
			sum += w
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("point %d: allocations sum to %g", i, sum)
		}
	}

	for i := 1; i < len(frontier.Points); i++ {
		prev, cur := frontier.Points[i-1], frontier.Points[i]
		if cur.Risk < prev.Risk {
			t.Errorf("points not sorted by risk: %g before %g", prev.Risk, cur.Risk)
		}
		// On an efficient frontier, more risk must buy at least as much return.
		if cur.Return < prev.Return-1e-6 {
			t.Errorf("return decreased along the frontier: %g then %g", prev.Return, cur.Return)
		}
	}
}

func TestGenerate_DeduplicatesByRisk(t *testing.T) {
	assets, corr := twoAssetSetup()

	frontier := Generate(assets, corr, nil, 30)

	seen := make(map[float64]bool)
	for _, p := range frontier.Points {
		key := math.Round(p.Risk*1e4) / 1e4
		if seen[key] {
			t.Errorf("duplicate risk level %g on the frontier", key)
		}
		seen[key] = true
	}
}

func TestGenerate_MetricsConsistency(t *testing.T) {
	assets, corr := twoAssetSetup()

	frontier := Generate(assets, corr, nil, 10)
	if len(frontier.Points) == 0 {
		t.Fatal("expected a non-empty frontier")
	}

	for i, p := range frontier.Points {
		weights := make([]float64, len(assets))
		for j, a := range assets {
			weights[j] = p.Allocations[a.Name]
		}
		m, err := Metrics(weights, assets, corr)
		if err != nil {
			t.Fatalf("point %d: %v", i, err)
		}
		if math.Abs(m.ExpectedReturn-p.Return) > 1e-9 {
			t.Errorf("point %d: return %g disagrees with metrics %g", i, p.Return, m.ExpectedReturn)
		}
		if math.Abs(m.Risk-p.Risk) > 1e-9 {
			t.Errorf("point %d: risk %g disagrees with metrics %g", i, p.Risk, m.Risk)
		}
	}
}

func TestGenerate_DegenerateUniverse(t *testing.T) {
	single := []models.AssetClass{
		{Name: "EQUITY", ExpectedReturn: 0.08, Risk: 0.16, CapMax: 1.0},
	}

	frontier := Generate(single, make(models.CorrelationMatrix), nil, 30)
	if len(frontier.Points) != 0 {
		t.Errorf("expected an empty frontier for a single asset, got %d points", len(frontier.Points))
	}

	frontier = Generate(nil, make(models.CorrelationMatrix), nil, 30)
	if len(frontier.Points) != 0 {
		t.Errorf("expected an empty frontier for no assets, got %d points", len(frontier.Points))
	}
}

func TestGenerate_BucketEnvelope(t *testing.T) {
	assets, corr := twoAssetSetup()
	config := models.BucketConfig{
		models.RiskAllocationGrowth: {Min: 0, Max: 0.4},
	}

	frontier := Generate(assets, corr, config, 15)
	if len(frontier.Points) == 0 {
		t.Fatal("expected a non-empty frontier")
	}
	for i, p := range frontier.Points {
		if p.Allocations["EQUITY"] > 0.4+1e-6 {
			t.Errorf("point %d: growth bucket %g exceeds 0.4 envelope", i, p.Allocations["EQUITY"])
		}
	}
}

func TestGeomspace(t *testing.T) {
	values := geomspace(0.1, 200, 30)
	if len(values) != 30 {
		t.Fatalf("expected 30 values, got %d", len(values))
	}
	if values[0] != 0.1 {
		t.Errorf("expected first value 0.1, got %g", values[0])
	}
	if values[29] != 200 {
		t.Errorf("expected last value 200, got %g", values[29])
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			t.Errorf("expected strictly increasing values, got %g then %g", values[i-1], values[i])
		}
	}
}
