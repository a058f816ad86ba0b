package models

import "strings"

// RiskAllocation is the coarse allocation bucket an asset class belongs to.
type RiskAllocation string

const (
	RiskAllocationStability   RiskAllocation = "STABILITY"
	RiskAllocationDiversified RiskAllocation = "DIVERSIFIED"
	RiskAllocationGrowth      RiskAllocation = "GROWTH"
)

// ParseRiskAllocation normalizes a raw bucket label. Anything that is not
// DIVERSIFIED or GROWTH is treated as STABILITY, matching how the catalog
// classifies assets without an explicit bucket.
func ParseRiskAllocation(raw string) RiskAllocation {
	switch RiskAllocation(strings.ToUpper(strings.TrimSpace(raw))) {
	case RiskAllocationDiversified:
		return RiskAllocationDiversified
	case RiskAllocationGrowth:
		return RiskAllocationGrowth
	default:
		return RiskAllocationStability
	}
}

// UniverseMode selects which slice of the asset catalog is optimized over.
type UniverseMode string

const (
	UniverseModeCore          UniverseMode = "core"
	UniverseModeCorePrivate   UniverseMode = "core_private"
	UniverseModeUnconstrained UniverseMode = "unconstrained"
)

// CapsTemplate names a pre-defined set of per-asset weight caps.
type CapsTemplate string

const (
	CapsTemplateStandard CapsTemplate = "standard"
	CapsTemplateTight    CapsTemplate = "tight"
	CapsTemplateLoose    CapsTemplate = "loose"
)

// AssetClass is one row of the capital market assumptions: an asset class
// with its annualized expected return, volatility, allocation bucket and
// maximum portfolio weight. Instances are immutable once loaded.
type AssetClass struct {
	Name           string         `json:"name"`
	ExpectedReturn float64        `json:"expected_return"`
	Risk           float64        `json:"risk"`
	RiskAllocation RiskAllocation `json:"risk_allocation"`
	CapMax         float64        `json:"cap_max"`
}

// CorrelationMatrix maps asset-name pairs to pairwise correlations.
// Storage is one-directional; At checks both orientations.
type CorrelationMatrix map[string]map[string]float64

// At returns the correlation between two asset classes. The diagonal is
// always 1 regardless of any stored value; missing off-diagonal pairs
// are treated as uncorrelated.
func (m CorrelationMatrix) At(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if row, ok := m[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	if row, ok := m[b]; ok {
		if v, ok := row[a]; ok {
			return v
		}
	}
	return 0.0
}

// Set stores a correlation value in both orientations.
func (m CorrelationMatrix) Set(a, b string, v float64) {
	if m[a] == nil {
		m[a] = make(map[string]float64)
	}
	if m[b] == nil {
		m[b] = make(map[string]float64)
	}
	m[a][b] = v
	m[b][a] = v
}

// CatalogSnapshot is the catalog's view of the world at load time: the full
// asset list plus the correlation matrix over those assets.
type CatalogSnapshot struct {
	Assets       []AssetClass      `json:"assets"`
	Correlations CorrelationMatrix `json:"correlations"`
}
