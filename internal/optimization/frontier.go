package optimization

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/awheeler/frontier/internal/models"
)

const (
	// DefaultFrontierPoints is the number of risk-aversion samples swept
	// when the caller does not specify one.
	DefaultFrontierPoints = 30

	minLambda = 0.1
	maxLambda = 200.0
)

// Generate sweeps the risk-aversion parameter over geometrically spaced
// values, solves the mean-variance program at each, and assembles the
// surviving solutions into a frontier sorted ascending by risk. Points whose
// risk rounds to a value already emitted are dropped: adjacent lambdas often
// collapse onto the same corner solution under tight caps.
//
// Fewer than 2 assets is a valid degenerate input and yields an empty
// frontier. Individual infeasible samples are skipped and counted, never
// fatal: the frontier is a best-effort sampled curve.
func Generate(assets []models.AssetClass, corr models.CorrelationMatrix, bucketConfig models.BucketConfig, numPoints int) *models.Frontier {
	frontier := &models.Frontier{Assets: assetNames(assets)}
	if len(assets) < 2 {
		return frontier
	}
	if numPoints <= 0 {
		numPoints = DefaultFrontierPoints
	}

	returns := returnsVector(assets)
	cov := BuildCovariance(assets, corr)
	cs := Assemble(assets, bucketConfig)

	lambdas := geomspace(minLambda, maxLambda, numPoints)
	results := make([]*SolveResult, len(lambdas))

	// Each lambda solve is independent; merge single-threaded after the join.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, lambda := range lambdas {
		i, lambda := i, lambda
		g.Go(func() error {
			if res, err := Solve(lambda, returns, cov, cs); err == nil {
				results[i] = res
			}
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[float64]bool)
	for _, res := range results {
		if res == nil {
			frontier.SkippedSamples++
			continue
		}
		key := roundRisk(res.Risk)
		if seen[key] {
			continue
		}
		seen[key] = true
		frontier.Points = append(frontier.Points, models.FrontierPoint{
			Risk:        res.Risk,
			Return:      res.Return,
			Allocations: allocationMap(assets, res.Weights),
		})
	}

	sort.Slice(frontier.Points, func(i, j int) bool {
		return frontier.Points[i].Risk < frontier.Points[j].Risk
	})

	return frontier
}

// roundRisk rounds to 4 decimal places, the deduplication key resolution.
func roundRisk(risk float64) float64 {
	return math.Round(risk*1e4) / 1e4
}

// geomspace returns n values geometrically spaced from start to end
// inclusive. Geometric spacing samples the return-dominated low-lambda
// regime and the risk-dominated high-lambda regime with equal ratio steps.
func geomspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	ratio := math.Pow(end/start, 1/float64(n-1))
	out := make([]float64, n)
	value := start
	for i := 0; i < n; i++ {
		out[i] = value
		value *= ratio
	}
	out[n-1] = end
	return out
}

func returnsVector(assets []models.AssetClass) []float64 {
	mu := make([]float64, len(assets))
	for i, a := range assets {
		mu[i] = a.ExpectedReturn
	}
	return mu
}

func assetNames(assets []models.AssetClass) []string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Name
	}
	return names
}

func allocationMap(assets []models.AssetClass, weights []float64) map[string]float64 {
	allocations := make(map[string]float64, len(assets))
	for i, a := range assets {
		allocations[a.Name] = weights[i]
	}
	return allocations
}
