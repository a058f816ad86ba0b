package catalog

import (
	"context"

	"github.com/awheeler/frontier/internal/models"
)

// StaticSource serves a built-in catalog so the service runs without a
// database or data directory. The figures are development-grade capital
// market assumptions, not investment advice.
type StaticSource struct{}

// NewStaticSource creates a StaticSource.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Load returns the built-in snapshot.
func (s *StaticSource) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	return &models.CatalogSnapshot{
		Assets:       DefaultAssets(),
		Correlations: DefaultCorrelations(),
	}, nil
}

// DefaultAssets returns the built-in asset universe.
func DefaultAssets() []models.AssetClass {
	return []models.AssetClass{
		{Name: "GLOBAL CASH", ExpectedReturn: 0.025, Risk: 0.01, RiskAllocation: models.RiskAllocationStability, CapMax: 1.0},
		{Name: "GLOBAL GOVERNMENT", ExpectedReturn: 0.035, Risk: 0.05, RiskAllocation: models.RiskAllocationStability, CapMax: 1.0},
		{Name: "GLOBAL AGGREGATE", ExpectedReturn: 0.045, Risk: 0.06, RiskAllocation: models.RiskAllocationStability, CapMax: 1.0},
		{Name: "HIGH YIELD", ExpectedReturn: 0.065, Risk: 0.10, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "GOLD", ExpectedReturn: 0.04, Risk: 0.15, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "GLOBAL", ExpectedReturn: 0.08, Risk: 0.16, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
		{Name: "EM", ExpectedReturn: 0.10, Risk: 0.22, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
		{Name: "PRIVATE DEBT", ExpectedReturn: 0.07, Risk: 0.08, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "PRIVATE INFRASTRUCTURE", ExpectedReturn: 0.075, Risk: 0.12, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "REAL ESTATE", ExpectedReturn: 0.065, Risk: 0.14, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "ABSOLUTE RETURN HS", ExpectedReturn: 0.055, Risk: 0.08, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
		{Name: "GROWTH DIRECTIONAL HF", ExpectedReturn: 0.07, Risk: 0.12, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
		{Name: "PRIVATE EQUITY", ExpectedReturn: 0.12, Risk: 0.25, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
		{Name: "VENTURE", ExpectedReturn: 0.15, Risk: 0.35, RiskAllocation: models.RiskAllocationGrowth, CapMax: 1.0},
		{Name: "CLO", ExpectedReturn: 0.08, Risk: 0.12, RiskAllocation: models.RiskAllocationDiversified, CapMax: 1.0},
	}
}

// DefaultCorrelations builds the built-in correlation matrix from
// bucket-level base correlations plus overrides for the pairs where the
// bucket default is clearly wrong (gold, cash).
func DefaultCorrelations() models.CorrelationMatrix {
	assets := DefaultAssets()

	base := map[models.RiskAllocation]map[models.RiskAllocation]float64{
		models.RiskAllocationStability: {
			models.RiskAllocationStability:   0.35,
			models.RiskAllocationDiversified: 0.15,
			models.RiskAllocationGrowth:      0.05,
		},
		models.RiskAllocationDiversified: {
			models.RiskAllocationStability:   0.15,
			models.RiskAllocationDiversified: 0.40,
			models.RiskAllocationGrowth:      0.45,
		},
		models.RiskAllocationGrowth: {
			models.RiskAllocationStability:   0.05,
			models.RiskAllocationDiversified: 0.45,
			models.RiskAllocationGrowth:      0.70,
		},
	}

	overrides := map[[2]string]float64{
		{"GOLD", "GLOBAL"}:             -0.05,
		{"GOLD", "EM"}:                 0.00,
		{"GOLD", "PRIVATE EQUITY"}:     -0.05,
		{"GOLD", "HIGH YIELD"}:         0.05,
		{"GLOBAL CASH", "GLOBAL"}:      0.00,
		{"GLOBAL CASH", "EM"}:          0.00,
		{"GLOBAL CASH", "HIGH YIELD"}:  0.05,
		{"GLOBAL CASH", "GOLD"}:        0.00,
		{"HIGH YIELD", "GLOBAL"}:       0.60,
		{"HIGH YIELD", "EM"}:           0.55,
		{"GLOBAL", "EM"}:               0.80,
		{"GLOBAL", "PRIVATE EQUITY"}:   0.75,
		{"REAL ESTATE", "GLOBAL"}:      0.55,
		{"PRIVATE DEBT", "HIGH YIELD"}: 0.55,
	}

	matrix := make(models.CorrelationMatrix)
	for i := 0; i < len(assets); i++ {
		for j := i + 1; j < len(assets); j++ {
			a, b := assets[i], assets[j]
			value := base[a.RiskAllocation][b.RiskAllocation]
			if v, ok := overrides[[2]string{a.Name, b.Name}]; ok {
				value = v
			} else if v, ok := overrides[[2]string{b.Name, a.Name}]; ok {
				value = v
			}
			matrix.Set(a.Name, b.Name, value)
		}
	}
	return matrix
}
