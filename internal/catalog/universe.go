package catalog

import (
	"strings"

	"github.com/awheeler/frontier/internal/models"
)

// coreAssets is the liquid core universe.
var coreAssets = map[string]bool{
	"GLOBAL CASH":       true,
	"GLOBAL GOVERNMENT": true,
	"GLOBAL AGGREGATE":  true,
	"HIGH YIELD":        true,
	"GOLD":              true,
	"GLOBAL":            true,
	"EM":                true,
}

// privateAssets extends the core universe with private-market asset classes.
var privateAssets = map[string]bool{
	"GLOBAL CASH":            true,
	"GLOBAL GOVERNMENT":      true,
	"PRIVATE DEBT":           true,
	"PRIVATE INFRASTRUCTURE": true,
	"REAL ESTATE":            true,
	"ABSOLUTE RETURN HS":     true,
	"GROWTH DIRECTIONAL HF":  true,
	"PRIVATE EQUITY":         true,
}

// specialAssets are specialized/illiquid classes that always carry a
// tighter position cap regardless of template.
var specialAssets = map[string]bool{
	"VENTURE":      true,
	"CLO":          true,
	"DEVELOPMENT":  true,
	"SPECIAL SITS": true,
	"GROWTH":       true,
}

const (
	tightCap   = 0.25
	specialCap = 0.25
)

// SelectUniverse filters the catalog's asset list down to the universe for a
// selection mode, or to an explicit custom list when one with at least 2
// names is given. Assets with non-positive risk are dropped in every mode.
func SelectUniverse(assets []models.AssetClass, mode models.UniverseMode, customAssets []string) []models.AssetClass {
	var wanted map[string]bool
	if len(customAssets) >= 2 {
		wanted = make(map[string]bool, len(customAssets))
		for _, name := range customAssets {
			wanted[strings.ToUpper(strings.TrimSpace(name))] = true
		}
	} else {
		switch mode {
		case models.UniverseModeCore:
			wanted = coreAssets
		case models.UniverseModeCorePrivate:
			wanted = make(map[string]bool, len(coreAssets)+len(privateAssets))
			for name := range coreAssets {
				wanted[name] = true
			}
			for name := range privateAssets {
				wanted[name] = true
			}
		default:
			// Unconstrained: the whole catalog.
		}
	}

	var selected []models.AssetClass
	for _, a := range assets {
		if a.Risk <= 0 {
			continue
		}
		if wanted != nil && !wanted[strings.ToUpper(a.Name)] {
			continue
		}
		selected = append(selected, a)
	}
	return selected
}

// ApplyCapsTemplate returns a copy of the asset list with each asset's
// effective cap resolved: the catalog cap clipped to [0,1], tightened by the
// template, and tightened again for specialized/illiquid assets. The
// stricter limit always wins.
func ApplyCapsTemplate(assets []models.AssetClass, template models.CapsTemplate) []models.AssetClass {
	out := make([]models.AssetClass, len(assets))
	for i, a := range assets {
		maxWeight := a.CapMax
		if maxWeight < 0 {
			maxWeight = 0
		}
		if maxWeight > 1 {
			maxWeight = 1.0
		}
		if template == models.CapsTemplateTight && maxWeight > tightCap {
			maxWeight = tightCap
		}
		if specialAssets[strings.ToUpper(a.Name)] && maxWeight > specialCap {
			maxWeight = specialCap
		}
		a.CapMax = maxWeight
		out[i] = a
	}
	return out
}
