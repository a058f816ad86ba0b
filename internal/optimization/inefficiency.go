package optimization

import (
	"math"
	"sort"
	"strings"

	"github.com/awheeler/frontier/internal/models"
)

// DefaultInefficiencyThreshold is the minimum deviation (3%) that flags a
// position.
const DefaultInefficiencyThreshold = 0.03

// InefficiencyFlag marks one position deviating significantly from its
// current allocation or from the benchmark. Percentages are in whole
// percent, rounded to one decimal.
type InefficiencyFlag struct {
	Asset            string                `json:"asset"`
	Bucket           models.RiskAllocation `json:"bucket"`
	CurrentPct       float64               `json:"current_pct"`
	ProposedPct      float64               `json:"proposed_pct"`
	BenchmarkPct     float64               `json:"benchmark_pct"`
	VsCurrentDelta   float64               `json:"vs_current_delta"`
	VsBenchmarkDelta float64               `json:"vs_benchmark_delta"`
}

// DetectInefficiencies flags holdings whose proposed weight deviates from
// the current weight or the benchmark weight by at least the threshold.
// Current and proposed columns are normalized to sum to 1 before comparison;
// assets absent from the benchmark map count as 0 there. Flags are sorted by
// asset name for stable output.
func DetectInefficiencies(holdings map[string]models.AllocationPair, benchmark map[string]float64, assets []models.AssetClass, threshold float64) []InefficiencyFlag {
	if len(holdings) == 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultInefficiencyThreshold
	}

	var currentTotal, proposedTotal float64
	for _, pair := range holdings {
		currentTotal += pair.Current
		proposedTotal += pair.Proposed
	}

	upperBenchmark := make(map[string]float64, len(benchmark))
	for name, weight := range benchmark {
		upperBenchmark[strings.ToUpper(strings.TrimSpace(name))] = weight
	}

	buckets := make(map[string]models.RiskAllocation, len(assets))
	for _, a := range assets {
		buckets[strings.ToUpper(a.Name)] = a.RiskAllocation
	}

	var flags []InefficiencyFlag
	for name, pair := range holdings {
		key := strings.ToUpper(strings.TrimSpace(name))

		current := pair.Current
		if currentTotal > 0 {
			current /= currentTotal
		}
		proposed := pair.Proposed
		if proposedTotal > 0 {
			proposed /= proposedTotal
		}
		bench := upperBenchmark[key]

		deltaCurrent := proposed - current
		deltaBenchmark := proposed - bench
		if math.Abs(deltaCurrent) < threshold && math.Abs(deltaBenchmark) < threshold {
			continue
		}

		flags = append(flags, InefficiencyFlag{
			Asset:            name,
			Bucket:           buckets[key],
			CurrentPct:       roundPct(current),
			ProposedPct:      roundPct(proposed),
			BenchmarkPct:     roundPct(bench),
			VsCurrentDelta:   roundPct(deltaCurrent),
			VsBenchmarkDelta: roundPct(deltaBenchmark),
		})
	}

	sort.Slice(flags, func(i, j int) bool { return flags[i].Asset < flags[j].Asset })
	return flags
}

func roundPct(v float64) float64 {
	return math.Round(v*1000) / 10
}
