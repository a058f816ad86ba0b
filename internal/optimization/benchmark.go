package optimization

import (
	"math"
	"strings"

	"github.com/awheeler/frontier/internal/models"
)

// Fallback assumptions used when a benchmark component is missing from the
// catalog, matching long-run global equity / aggregate bond figures.
const (
	fallbackEquityReturn      = 0.08
	fallbackEquityRisk        = 0.16
	fallbackFixedIncomeReturn = 0.04
	fallbackFixedIncomeRisk   = 0.05
	fallbackCorrelation       = 0.2
)

// BenchmarkComponent is one leg of a blended benchmark.
type BenchmarkComponent struct {
	Name       string  `json:"name"`
	Return     float64 `json:"return"`
	Risk       float64 `json:"risk"`
	Allocation float64 `json:"allocation"`
}

// BlendedBenchmark is the risk/return of a two-asset equity/fixed-income mix.
type BlendedBenchmark struct {
	BlendedReturn float64            `json:"blended_return"`
	BlendedRisk   float64            `json:"blended_risk"`
	Equity        BenchmarkComponent `json:"equity"`
	FixedIncome   BenchmarkComponent `json:"fixed_income"`
	Correlation   float64            `json:"correlation"`
}

// BlendBenchmark computes the blended return and volatility of an
// equity/fixed-income mix from the catalog's assumptions, using the
// closed-form two-asset portfolio variance. Components missing from the
// catalog fall back to standard assumptions rather than failing.
func BlendBenchmark(assets []models.AssetClass, corr models.CorrelationMatrix, equityName, fixedIncomeName string, equityAllocation float64) BlendedBenchmark {
	equityName = strings.ToUpper(strings.TrimSpace(equityName))
	fixedIncomeName = strings.ToUpper(strings.TrimSpace(fixedIncomeName))
	fixedIncomeAllocation := 1 - equityAllocation

	eqReturn, eqRisk := lookupAssumptions(assets, equityName, fallbackEquityReturn, fallbackEquityRisk)
	fiReturn, fiRisk := lookupAssumptions(assets, fixedIncomeName, fallbackFixedIncomeReturn, fallbackFixedIncomeRisk)

	pairCorr := corr.At(equityName, fixedIncomeName)
	if pairCorr == 0 && !hasAsset(assets, equityName, fixedIncomeName) {
		pairCorr = fallbackCorrelation
	}

	blendedReturn := equityAllocation*eqReturn + fixedIncomeAllocation*fiReturn
	blendedVariance := equityAllocation*equityAllocation*eqRisk*eqRisk +
		fixedIncomeAllocation*fixedIncomeAllocation*fiRisk*fiRisk +
		2*equityAllocation*fixedIncomeAllocation*eqRisk*fiRisk*pairCorr

	return BlendedBenchmark{
		BlendedReturn: blendedReturn,
		BlendedRisk:   math.Sqrt(math.Max(blendedVariance, 0)),
		Equity: BenchmarkComponent{
			Name:       equityName,
			Return:     eqReturn,
			Risk:       eqRisk,
			Allocation: equityAllocation,
		},
		FixedIncome: BenchmarkComponent{
			Name:       fixedIncomeName,
			Return:     fiReturn,
			Risk:       fiRisk,
			Allocation: fixedIncomeAllocation,
		},
		Correlation: pairCorr,
	}
}

func lookupAssumptions(assets []models.AssetClass, name string, fallbackReturn, fallbackRisk float64) (float64, float64) {
	for _, a := range assets {
		if strings.EqualFold(a.Name, name) {
			return a.ExpectedReturn, a.Risk
		}
	}
	return fallbackReturn, fallbackRisk
}

func hasAsset(assets []models.AssetClass, names ...string) bool {
	for _, name := range names {
		found := false
		for _, a := range assets {
			if strings.EqualFold(a.Name, name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
