package models

// FrontierPoint is one accepted portfolio on the efficient frontier.
type FrontierPoint struct {
	Risk        float64            `json:"risk"`
	Return      float64            `json:"return"`
	Allocations map[string]float64 `json:"allocations"`
}

// Frontier is an ordered set of frontier points, sorted ascending by risk.
type Frontier struct {
	Points         []FrontierPoint `json:"points"`
	Assets         []string        `json:"assets"`
	SkippedSamples int             `json:"skipped_samples"`
}

// PortfolioMetrics holds point-wise risk metrics for a weight vector.
// VaR and CVaR are parametric (Gaussian) at the 95% level.
type PortfolioMetrics struct {
	ExpectedReturn float64 `json:"expected_return"`
	Risk           float64 `json:"risk"`
	VaR95          float64 `json:"var_95"`
	CVaR95         float64 `json:"cvar_95"`
	SharpeRatio    float64 `json:"sharpe_ratio"`
}

// ResampledPoint is one (risk, return) sample from the resampling engine.
// Ephemeral: regenerated with fresh randomness on every call.
type ResampledPoint struct {
	Risk   float64 `json:"risk"`
	Return float64 `json:"return"`
}

// BucketRange is a min/max envelope on the total weight of a bucket.
type BucketRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BucketConfig overrides the default [0,1] envelope per allocation bucket.
// Buckets absent from the map keep the default envelope.
type BucketConfig map[RiskAllocation]BucketRange

// Range returns the configured envelope for a bucket, defaulting to [0,1].
func (c BucketConfig) Range(bucket RiskAllocation) BucketRange {
	if c != nil {
		if r, ok := c[bucket]; ok {
			return r
		}
	}
	return BucketRange{Min: 0.0, Max: 1.0}
}

// PortfolioHoldings maps asset-class names to weights, as supplied by the
// uploaded-portfolio reader. Weights are not required to sum to 1.
type PortfolioHoldings map[string]float64
