package optimization

import (
	"testing"

	"github.com/awheeler/frontier/internal/models"
)

func constraintTestAssets() []models.AssetClass {
	return []models.AssetClass{
		{Name: "CASH", ExpectedReturn: 0.02, Risk: 0.01, RiskAllocation: models.RiskAllocationStability, CapMax: 1.0},
		{Name: "BONDS", ExpectedReturn: 0.04, Risk: 0.05, RiskAllocation: models.RiskAllocationStability, CapMax: 0.8},
		{Name: "CREDIT", ExpectedReturn: 0.06, Risk: 0.09, RiskAllocation: models.RiskAllocationDiversified, CapMax: 0.5},
		{Name: "EQUITY", ExpectedReturn: 0.08, Risk: 0.16, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
	}
}

func TestAssemble_BoundsOnly(t *testing.T) {
	cs := Assemble(constraintTestAssets(), nil)

	if len(cs.Bounds) != 4 {
		t.Fatalf("expected 4 bounds, got %d", len(cs.Bounds))
	}
	if len(cs.Buckets) != 0 {
		t.Errorf("expected no bucket constraints without a bucket config, got %d", len(cs.Buckets))
	}
	if cs.Bounds[1].Upper != 0.8 {
		t.Errorf("expected BONDS upper bound 0.8, got %g", cs.Bounds[1].Upper)
	}
	for i, b := range cs.Bounds {
		if b.Lower != 0 {
			t.Errorf("bound %d: expected lower bound 0, got %g", i, b.Lower)
		}
	}
}

func TestAssemble_ClampsCaps(t *testing.T) {
	assets := []models.AssetClass{
		{Name: "A", Risk: 0.1, CapMax: 1.5},
		{Name: "B", Risk: 0.1, CapMax: -0.2},
	}
	cs := Assemble(assets, nil)

	if cs.Bounds[0].Upper != 1.0 {
		t.Errorf("expected cap above 1 clamped to 1, got %g", cs.Bounds[0].Upper)
	}
	if cs.Bounds[1].Upper != 0.0 {
		t.Errorf("expected negative cap clamped to 0, got %g", cs.Bounds[1].Upper)
	}
}

func TestAssemble_Buckets(t *testing.T) {
	config := models.BucketConfig{
		models.RiskAllocationGrowth: {Min: 0.1, Max: 0.4},
	}
	cs := Assemble(constraintTestAssets(), config)

	if len(cs.Buckets) != 3 {
		t.Fatalf("expected 3 bucket constraints, got %d", len(cs.Buckets))
	}

	// Ordering is STABILITY, DIVERSIFIED, GROWTH.
	if cs.Buckets[0].Name != models.RiskAllocationStability {
		t.Errorf("expected first bucket STABILITY, got %s", cs.Buckets[0].Name)
	}
	if got := len(cs.Buckets[0].Indices); got != 2 {
		t.Errorf("expected 2 STABILITY members, got %d", got)
	}

	growth := cs.Buckets[2]
	if growth.Name != models.RiskAllocationGrowth {
		t.Fatalf("expected third bucket GROWTH, got %s", growth.Name)
	}
	if growth.Min != 0.1 || growth.Max != 0.4 {
		t.Errorf("expected GROWTH envelope [0.1, 0.4], got [%g, %g]", growth.Min, growth.Max)
	}

	// Unconfigured buckets keep the default envelope.
	if cs.Buckets[1].Min != 0 || cs.Buckets[1].Max != 1 {
		t.Errorf("expected default envelope [0, 1] for DIVERSIFIED, got [%g, %g]", cs.Buckets[1].Min, cs.Buckets[1].Max)
	}
}

func TestFeasible(t *testing.T) {
	feasible := ConstraintSystem{
		Bounds: []Bound{{0, 0.6}, {0, 0.6}},
	}
	if !feasible.Feasible() {
		t.Error("expected caps summing above 1 to be feasible")
	}

	capsTooSmall := ConstraintSystem{
		Bounds: []Bound{{0, 0.3}, {0, 0.3}},
	}
	if capsTooSmall.Feasible() {
		t.Error("expected caps summing below 1 to be infeasible")
	}

	bucketOverCaps := ConstraintSystem{
		Bounds: []Bound{{0, 0.2}, {0, 1.0}},
		Buckets: []BucketConstraint{
			{Indices: []int{0}, Min: 0.5, Max: 1.0},
		},
	}
	if bucketOverCaps.Feasible() {
		t.Error("expected bucket min above member caps to be infeasible")
	}

	partitionTooTight := ConstraintSystem{
		Bounds: []Bound{{0, 1}, {0, 1}},
		Buckets: []BucketConstraint{
			{Indices: []int{0}, Min: 0, Max: 0.3},
			{Indices: []int{1}, Min: 0, Max: 0.3},
		},
	}
	if partitionTooTight.Feasible() {
		t.Error("expected partitioning envelopes with max sum below 1 to be infeasible")
	}
}
