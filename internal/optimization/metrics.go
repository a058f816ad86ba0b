package optimization

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/awheeler/frontier/internal/models"
)

const (
	// RiskFreeRate is the fixed annual risk-free rate used for Sharpe ratios.
	RiskFreeRate = 0.03

	// z95 is the 95th-percentile standard-normal quantile.
	z95 = 1.645
	// es95 is phi(z95)/0.05, the Gaussian 95% expected-shortfall multiplier.
	es95 = 0.103 / 0.05
)

// Metrics computes point-wise risk metrics for an arbitrary weight vector
// over the given assets: expected return, standard deviation, parametric 95%
// VaR/CVaR, and the Sharpe ratio against the fixed risk-free rate. Weights
// are taken as supplied; callers wanting metrics on unnormalized holdings get
// exactly what those holdings imply.
//
// The only error condition is a weight vector whose length does not match
// the asset list, which is a caller contract violation.
func Metrics(weights []float64, assets []models.AssetClass, corr models.CorrelationMatrix) (*models.PortfolioMetrics, error) {
	if len(weights) != len(assets) {
		return nil, fmt.Errorf("weight vector has %d entries for %d assets", len(weights), len(assets))
	}

	mu := returnsVector(assets)
	cov := BuildCovariance(assets, corr)

	expectedReturn := floats.Dot(weights, mu)
	risk := math.Sqrt(math.Max(quadraticForm(weights, cov), 0))

	sharpe := 0.0
	if risk > 0 {
		sharpe = (expectedReturn - RiskFreeRate) / risk
	}

	return &models.PortfolioMetrics{
		ExpectedReturn: expectedReturn,
		Risk:           risk,
		VaR95:          -expectedReturn + risk*z95,
		CVaR95:         -expectedReturn + risk*es95,
		SharpeRatio:    sharpe,
	}, nil
}
