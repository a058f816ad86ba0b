package optimization

import (
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/awheeler/frontier/internal/models"
)

const (
	// DefaultResamples is the number of perturbation draws when the caller
	// does not specify one.
	DefaultResamples = 100
	// DefaultReturnNoise is the standard deviation of the Gaussian noise
	// added to each expected return.
	DefaultReturnNoise = 0.02
)

// resampleLambdaGrid is the fixed coarse grid of risk-aversion levels used
// for every resampling draw. Keeping it small bounds cost to
// numResamples x len(grid) solves regardless of the frontier resolution.
var resampleLambdaGrid = []float64{0.5, 1, 2, 5, 10, 20, 50, 100}

// ResampleOptions controls the resampling engine. Rand must be a per-call
// generator so concurrent requests do not interfere; when nil a
// time-seeded generator is created.
type ResampleOptions struct {
	NumResamples int
	ReturnNoise  float64
	Rand         *rand.Rand
}

// Resample estimates the frontier's sensitivity to estimation error in the
// expected returns. Each draw perturbs every expected return with independent
// Gaussian noise and re-solves at the fixed lambda grid. The reported return
// of each accepted solution is recomputed against the original, unperturbed
// returns: the scatter shows where portfolios that were optimal under noisy
// inputs actually land, not the noisy return of the wrong portfolio.
//
// Failed solves are skipped, same policy as the frontier sweep.
func Resample(assets []models.AssetClass, corr models.CorrelationMatrix, bucketConfig models.BucketConfig, opts ResampleOptions) []models.ResampledPoint {
	if len(assets) < 2 {
		return nil
	}
	if opts.NumResamples <= 0 {
		opts.NumResamples = DefaultResamples
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	baseReturns := returnsVector(assets)
	cov := BuildCovariance(assets, corr)
	cs := Assemble(assets, bucketConfig)

	// Draw all perturbations up front from the single generator, so a
	// seeded run is deterministic even though the solves run in parallel.
	perturbed := make([][]float64, opts.NumResamples)
	for k := range perturbed {
		draw := make([]float64, len(baseReturns))
		for i, base := range baseReturns {
			draw[i] = base + rng.NormFloat64()*opts.ReturnNoise
		}
		perturbed[k] = draw
	}

	scatter := make([][]models.ResampledPoint, opts.NumResamples)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range perturbed {
		k := k
		g.Go(func() error {
			var points []models.ResampledPoint
			for _, lambda := range resampleLambdaGrid {
				res, err := Solve(lambda, perturbed[k], cov, cs)
				if err != nil {
					continue
				}
				points = append(points, models.ResampledPoint{
					Risk:   res.Risk,
					Return: floats.Dot(res.Weights, baseReturns),
				})
			}
			scatter[k] = points
			return nil
		})
	}
	_ = g.Wait()

	var points []models.ResampledPoint
	for _, batch := range scatter {
		points = append(points, batch...)
	}
	return points
}

// ResampleLambdaGrid exposes a copy of the fixed grid, mainly so callers can
// line resampled scatters up against base-frontier solves.
func ResampleLambdaGrid() []float64 {
	return append([]float64(nil), resampleLambdaGrid...)
}
