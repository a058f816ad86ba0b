package optimization

import (
	"errors"
	"testing"

	"github.com/awheeler/frontier/internal/models"
)

func selectionFrontier() *models.Frontier {
	return &models.Frontier{
		Assets: []string{"BONDS", "EQUITY"},
		Points: []models.FrontierPoint{
			{Risk: 0.05, Return: 0.04, Allocations: map[string]float64{"BONDS": 1}},
			{Risk: 0.10, Return: 0.07, Allocations: map[string]float64{"BONDS": 0.6, "EQUITY": 0.4}},
			{Risk: 0.20, Return: 0.10, Allocations: map[string]float64{"EQUITY": 1}},
		},
	}
}

func TestFindOptimalPortfolio_MaxSharpe(t *testing.T) {
	sel, err := FindOptimalPortfolio(selectionFrontier(), nil, nil, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sharpe ratios: 0.2, 0.4, 0.35; the middle point wins.
	if sel.Index != 1 {
		t.Errorf("expected index 1 for max Sharpe, got %d", sel.Index)
	}
	if sel.SelectionMethod != "max_sharpe" {
		t.Errorf("expected method max_sharpe, got %s", sel.SelectionMethod)
	}
}

func TestFindOptimalPortfolio_TargetReturn(t *testing.T) {
	target := 0.06
	sel, err := FindOptimalPortfolio(selectionFrontier(), &target, nil, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Minimum-risk point achieving 6%.
	if sel.Index != 1 {
		t.Errorf("expected index 1 for target return 0.06, got %d", sel.Index)
	}

	// Unachievable targets fall back to the best available return.
	unreachable := 0.5
	sel, err = FindOptimalPortfolio(selectionFrontier(), &unreachable, nil, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Index != 2 {
		t.Errorf("expected fallback to best return (index 2), got %d", sel.Index)
	}
}

func TestFindOptimalPortfolio_TargetRisk(t *testing.T) {
	target := 0.12
	sel, err := FindOptimalPortfolio(selectionFrontier(), nil, &target, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Maximum-return point within 12% risk.
	if sel.Index != 1 {
		t.Errorf("expected index 1 for target risk 0.12, got %d", sel.Index)
	}

	// A risk budget below every point falls back to minimum risk.
	tiny := 0.01
	sel, err = FindOptimalPortfolio(selectionFrontier(), nil, &tiny, 0.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Index != 0 {
		t.Errorf("expected fallback to minimum risk (index 0), got %d", sel.Index)
	}
}

func TestFindOptimalPortfolio_EmptyFrontier(t *testing.T) {
	_, err := FindOptimalPortfolio(&models.Frontier{}, nil, nil, 0.03)
	if !errors.Is(err, ErrEmptyFrontier) {
		t.Errorf("expected ErrEmptyFrontier, got %v", err)
	}
	_, err = FindOptimalPortfolio(nil, nil, nil, 0.03)
	if !errors.Is(err, ErrEmptyFrontier) {
		t.Errorf("expected ErrEmptyFrontier for nil frontier, got %v", err)
	}
}
