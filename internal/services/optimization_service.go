package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/awheeler/frontier/internal/catalog"
	"github.com/awheeler/frontier/internal/models"
	"github.com/awheeler/frontier/internal/optimization"
)

var (
	ErrUniverseTooSmall = errors.New("universe must contain at least two asset classes")
	ErrNoKnownHoldings  = errors.New("holdings reference no known asset classes")
)

// OptimizationService handles frontier, metrics and resampling business logic
type OptimizationService struct {
	catalog *catalog.Catalog
}

// NewOptimizationService creates a new OptimizationService
func NewOptimizationService(cat *catalog.Catalog) *OptimizationService {
	return &OptimizationService{catalog: cat}
}

// resolveUniverse loads the catalog snapshot, selects the requested universe
// and applies the caps template. Unknown custom assets and filtered asset
// classes are reported as warnings, not errors.
func (s *OptimizationService) resolveUniverse(ctx context.Context, mode models.UniverseMode, template models.CapsTemplate, customAssets []string) ([]models.AssetClass, models.CorrelationMatrix, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(customAssets) > 0 {
		known := make(map[string]struct{}, len(snapshot.Assets))
		for _, a := range snapshot.Assets {
			known[a.Name] = struct{}{}
		}
		for _, name := range customAssets {
			if _, ok := known[name]; !ok {
				AddWarning(ctx, models.Warning{
					Code:    models.WarnUnknownAsset,
					Message: fmt.Sprintf("asset class %q is not in the catalog and was ignored", name),
				})
			}
		}
	}

	universe := catalog.SelectUniverse(snapshot.Assets, mode, customAssets)
	if dropped := len(snapshot.Assets) - len(universe); dropped > 0 && len(customAssets) == 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnAssetsFiltered,
			Message: fmt.Sprintf("%d asset classes were excluded from the %s universe", dropped, mode),
		})
	}
	universe = catalog.ApplyCapsTemplate(universe, template)
	return universe, snapshot.Correlations, nil
}

// ComputeFrontier generates an efficient frontier for the requested universe.
func (s *OptimizationService) ComputeFrontier(ctx context.Context, req *models.FrontierRequest) (*models.Frontier, error) {
	defer TrackTime("ComputeFrontier", time.Now())

	universe, correlations, err := s.resolveUniverse(ctx, req.Mode, req.CapsTemplate, req.CustomAssets)
	if err != nil {
		return nil, err
	}
	if len(universe) < 2 {
		return nil, ErrUniverseTooSmall
	}

	numPoints := req.NumPoints
	if numPoints <= 0 {
		numPoints = optimization.DefaultFrontierPoints
	}

	frontier := optimization.Generate(universe, correlations, req.BucketConfig, numPoints)
	if frontier.SkippedSamples > 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnInfeasibleSamples,
			Message: fmt.Sprintf("%d risk-aversion samples did not produce a feasible portfolio", frontier.SkippedSamples),
		})
	}
	if len(frontier.Points) == 0 {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnEmptyFrontier,
			Message: "no feasible frontier points could be computed for the requested constraints",
		})
	}
	return frontier, nil
}

// ComputeMetrics evaluates risk/return metrics for arbitrary holdings,
// such as an uploaded portfolio. Holdings that do not match a catalog asset
// class are dropped with a warning and the remainder is renormalized.
func (s *OptimizationService) ComputeMetrics(ctx context.Context, holdings models.PortfolioHoldings) (*models.PortfolioMetrics, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	byName := make(map[string]models.AssetClass, len(snapshot.Assets))
	for _, a := range snapshot.Assets {
		byName[a.Name] = a
	}

	var assets []models.AssetClass
	var weights []float64
	var total float64
	names := make([]string, 0, len(holdings))
	for name := range holdings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnUnknownAsset,
				Message: fmt.Sprintf("holding %q is not a known asset class and was ignored", name),
			})
			continue
		}
		assets = append(assets, a)
		weights = append(weights, holdings[name])
		total += holdings[name]
	}
	if len(assets) == 0 || total <= 0 {
		return nil, ErrNoKnownHoldings
	}
	for i := range weights {
		weights[i] /= total
	}

	return optimization.Metrics(weights, assets, snapshot.Correlations)
}

// Resample runs the resampled-frontier simulation for the requested universe.
func (s *OptimizationService) Resample(ctx context.Context, req *models.ResampleRequest) ([]models.ResampledPoint, error) {
	defer TrackTime("Resample", time.Now())

	universe, correlations, err := s.resolveUniverse(ctx, req.Mode, req.CapsTemplate, req.CustomAssets)
	if err != nil {
		return nil, err
	}
	if len(universe) < 2 {
		return nil, ErrUniverseTooSmall
	}

	opts := optimization.ResampleOptions{
		NumResamples: req.NumResamples,
		ReturnNoise:  optimization.DefaultReturnNoise,
	}
	if opts.NumResamples <= 0 {
		opts.NumResamples = optimization.DefaultResamples
	}
	if req.ReturnNoise != nil {
		opts.ReturnNoise = *req.ReturnNoise
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	opts.Rand = rand.New(rand.NewSource(seed))

	points := optimization.Resample(universe, correlations, req.BucketConfig, opts)
	if expected := opts.NumResamples * len(optimization.ResampleLambdaGrid()); len(points) < expected {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnInfeasibleSamples,
			Message: fmt.Sprintf("%d resampled solves did not produce a feasible portfolio", expected-len(points)),
		})
	}
	return points, nil
}

// OptimalPortfolio computes a fresh frontier and selects the optimal point,
// by maximum Sharpe ratio unless a return or risk target is given.
func (s *OptimizationService) OptimalPortfolio(ctx context.Context, req *models.OptimalPortfolioRequest) (*optimization.OptimalSelection, error) {
	frontier, err := s.ComputeFrontier(ctx, &models.FrontierRequest{
		Mode:         req.Mode,
		CapsTemplate: req.CapsTemplate,
		BucketConfig: req.BucketConfig,
	})
	if err != nil {
		return nil, err
	}
	return optimization.FindOptimalPortfolio(frontier, req.TargetReturn, req.TargetRisk, optimization.RiskFreeRate)
}

// BlendedBenchmark builds a two-asset equity/fixed-income benchmark.
func (s *OptimizationService) BlendedBenchmark(ctx context.Context, req *models.BenchmarkRequest) (*optimization.BlendedBenchmark, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	benchmark := optimization.BlendBenchmark(snapshot.Assets, snapshot.Correlations, req.EquityType, req.FixedIncomeType, req.EquityAllocation)
	return &benchmark, nil
}

// Inefficiencies flags holdings whose proposed allocation drifts from both
// the current allocation and the benchmark by more than the threshold.
func (s *OptimizationService) Inefficiencies(ctx context.Context, req *models.InefficiencyRequest) ([]optimization.InefficiencyFlag, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	threshold := optimization.DefaultInefficiencyThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	flags := optimization.DetectInefficiencies(req.Holdings, req.BenchmarkAllocations, snapshot.Assets, threshold)
	return flags, nil
}

// Assets lists the asset class names available in the requested universe.
func (s *OptimizationService) Assets(ctx context.Context, mode models.UniverseMode) ([]string, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	universe := catalog.SelectUniverse(snapshot.Assets, mode, nil)
	names := make([]string, 0, len(universe))
	for _, a := range universe {
		names = append(names, a.Name)
	}
	return names, nil
}

// CMAData returns the full capital market assumptions table.
func (s *OptimizationService) CMAData(ctx context.Context) ([]models.AssetClass, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return snapshot.Assets, nil
}

// CorrelationMatrix returns the pairwise correlation table.
func (s *OptimizationService) CorrelationMatrix(ctx context.Context) (models.CorrelationMatrix, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return snapshot.Correlations, nil
}
