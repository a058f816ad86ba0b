package models

// FrontierRequest represents the request body for computing an efficient frontier
type FrontierRequest struct {
	Mode         UniverseMode `json:"mode"`
	CapsTemplate CapsTemplate `json:"caps_template"`
	CustomAssets []string     `json:"custom_assets,omitempty"`
	BucketConfig BucketConfig `json:"bucket_config,omitempty"`
	NumPoints    int          `json:"num_points"`
}

// FrontierResponse wraps a computed frontier with any non-fatal warnings
type FrontierResponse struct {
	Frontier *Frontier `json:"frontier"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// MetricsRequest represents the request body for computing portfolio metrics
// over arbitrary (e.g. uploaded) holdings
type MetricsRequest struct {
	Holdings PortfolioHoldings `json:"holdings" binding:"required"`
}

// MetricsResponse wraps computed metrics with any non-fatal warnings
type MetricsResponse struct {
	Metrics  *PortfolioMetrics `json:"metrics"`
	Warnings []Warning         `json:"warnings,omitempty"`
}

// ResampleRequest represents the request body for frontier resampling
type ResampleRequest struct {
	Mode         UniverseMode `json:"mode"`
	CapsTemplate CapsTemplate `json:"caps_template"`
	CustomAssets []string     `json:"custom_assets,omitempty"`
	BucketConfig BucketConfig `json:"bucket_config,omitempty"`
	NumResamples int          `json:"num_resamples"`
	ReturnNoise  *float64     `json:"return_noise,omitempty"`
	Seed         *int64       `json:"seed,omitempty"`
}

// ResampleResponse wraps the resampled risk/return scatter
type ResampleResponse struct {
	Points   []ResampledPoint `json:"points"`
	Warnings []Warning        `json:"warnings,omitempty"`
}

// OptimalPortfolioRequest represents the request body for selecting an
// optimal portfolio from a freshly computed frontier
type OptimalPortfolioRequest struct {
	Mode         UniverseMode `json:"mode"`
	CapsTemplate CapsTemplate `json:"caps_template"`
	BucketConfig BucketConfig `json:"bucket_config,omitempty"`
	TargetReturn *float64     `json:"target_return,omitempty"`
	TargetRisk   *float64     `json:"target_risk,omitempty"`
}

// BenchmarkRequest represents the request body for a blended benchmark
type BenchmarkRequest struct {
	EquityType       string  `json:"equity_type"`
	FixedIncomeType  string  `json:"fixed_income_type"`
	EquityAllocation float64 `json:"equity_allocation"`
}

// AllocationPair holds the current and proposed weight for one asset class
type AllocationPair struct {
	Current  float64 `json:"current"`
	Proposed float64 `json:"proposed"`
}

// InefficiencyRequest represents the request body for inefficiency detection
type InefficiencyRequest struct {
	Holdings             map[string]AllocationPair `json:"holdings" binding:"required"`
	BenchmarkAllocations map[string]float64        `json:"benchmark_allocations"`
	Threshold            *float64                  `json:"threshold,omitempty"`
}

// AssetListResponse lists the asset classes available for optimization
type AssetListResponse struct {
	Assets []string `json:"assets"`
	Count  int      `json:"count"`
}

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
