package optimization

import (
	"testing"

	"github.com/awheeler/frontier/internal/models"
)

func TestDetectInefficiencies_FlagsLargeDrift(t *testing.T) {
	holdings := map[string]models.AllocationPair{
		"EQUITY": {Current: 0.50, Proposed: 0.60},
		"BONDS":  {Current: 0.50, Proposed: 0.40},
	}
	benchmark := map[string]float64{"EQUITY": 0.60, "BONDS": 0.40}
	assets := []models.AssetClass{
		{Name: "EQUITY", RiskAllocation: models.RiskAllocationGrowth},
		{Name: "BONDS", RiskAllocation: models.RiskAllocationStability},
	}

	flags := DetectInefficiencies(holdings, benchmark, assets, 0.05)
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(flags))
	}

	// Sorted by asset name: BONDS first.
	if flags[0].Asset != "BONDS" || flags[1].Asset != "EQUITY" {
		t.Errorf("expected flags sorted by asset, got %s then %s", flags[0].Asset, flags[1].Asset)
	}
	eq := flags[1]
	if eq.Bucket != models.RiskAllocationGrowth {
		t.Errorf("expected GROWTH bucket for EQUITY, got %s", eq.Bucket)
	}
	if eq.CurrentPct != 50.0 || eq.ProposedPct != 60.0 {
		t.Errorf("expected 50%% -> 60%%, got %g%% -> %g%%", eq.CurrentPct, eq.ProposedPct)
	}
	if eq.VsCurrentDelta != 10.0 {
		t.Errorf("expected +10%% vs current, got %g", eq.VsCurrentDelta)
	}
	if eq.VsBenchmarkDelta != 0.0 {
		t.Errorf("expected 0%% vs benchmark, got %g", eq.VsBenchmarkDelta)
	}
}

func TestDetectInefficiencies_BelowThreshold(t *testing.T) {
	holdings := map[string]models.AllocationPair{
		"EQUITY": {Current: 0.60, Proposed: 0.61},
		"BONDS":  {Current: 0.40, Proposed: 0.39},
	}
	benchmark := map[string]float64{"EQUITY": 0.60, "BONDS": 0.40}

	flags := DetectInefficiencies(holdings, benchmark, nil, 0.03)
	if len(flags) != 0 {
		t.Errorf("expected no flags below threshold, got %d", len(flags))
	}
}

func TestDetectInefficiencies_NormalizesColumns(t *testing.T) {
	// Dollar amounts rather than weights: 300/100 current, 100/100 proposed.
	holdings := map[string]models.AllocationPair{
		"EQUITY": {Current: 300, Proposed: 100},
		"BONDS":  {Current: 100, Proposed: 100},
	}

	flags := DetectInefficiencies(holdings, nil, nil, 0.05)
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(flags))
	}
	eq := flags[1]
	if eq.CurrentPct != 75.0 || eq.ProposedPct != 50.0 {
		t.Errorf("expected normalized 75%% -> 50%%, got %g%% -> %g%%", eq.CurrentPct, eq.ProposedPct)
	}
}

func TestDetectInefficiencies_EmptyHoldings(t *testing.T) {
	if flags := DetectInefficiencies(nil, nil, nil, 0.03); flags != nil {
		t.Errorf("expected nil for empty holdings, got %d flags", len(flags))
	}
}
