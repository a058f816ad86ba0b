package optimization

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

var (
	// ErrInfeasible signals that the constraint system admits no portfolio.
	ErrInfeasible = errors.New("infeasible constraint system")
	// ErrNotConverged signals numerical breakdown at a risk-aversion sample.
	ErrNotConverged = errors.New("solver did not converge")
)

const (
	// penaltyWeight scales the quadratic penalties on constraint violations
	// in the smooth surrogate handed to the line-search methods.
	penaltyWeight = 1000.0

	projectMaxIterations = 200
	bisectIterations     = 100
	refineIterations     = 500
)

// SolveResult is a successfully solved portfolio at one risk-aversion level.
type SolveResult struct {
	Weights []float64
	Return  float64
	Risk    float64
}

// Solve minimizes lambda * w'Sigma'w - mu'w over the constraint system and
// returns the optimal weights with their return and risk. Infeasible
// constraints yield ErrInfeasible and numerical breakdown ErrNotConverged;
// both are expected, skippable outcomes. Only malformed input (mismatched
// dimensions, non-positive lambda) produces a descriptive error.
//
// The solver holds no cross-call state, so concurrent sweeps are safe.
func Solve(lambda float64, returns []float64, cov *mat.SymDense, cs ConstraintSystem) (*SolveResult, error) {
	n := len(returns)
	if n == 0 {
		return nil, fmt.Errorf("empty returns vector")
	}
	if cov.SymmetricDim() != n {
		return nil, fmt.Errorf("covariance dimension %d does not match %d assets", cov.SymmetricDim(), n)
	}
	if len(cs.Bounds) != n {
		return nil, fmt.Errorf("constraint system has %d bounds for %d assets", len(cs.Bounds), n)
	}
	if lambda <= 0 {
		return nil, fmt.Errorf("lambda must be positive, got %g", lambda)
	}
	if !cs.Feasible() {
		return nil, ErrInfeasible
	}

	// Starting point: equal weights pulled into the feasible set.
	initial := make([]float64, n)
	for i := range initial {
		initial[i] = 1.0 / float64(n)
	}
	project(initial, cs)

	problem := optimize.Problem{
		Func: func(w []float64) float64 {
			return penalizedObjective(lambda, returns, cov, cs, w)
		},
		Grad: func(grad, w []float64) {
			penalizedGradient(lambda, returns, cov, cs, w, grad)
		},
	}
	settings := &optimize.Settings{GradientThreshold: 1e-10, MajorIterations: 1000}

	x := append([]float64(nil), initial...)
	result, err := optimize.Minimize(problem, initial, settings, &optimize.BFGS{})
	if err != nil || !accepted(result.Status) {
		result, err = optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	}
	if err == nil && result != nil {
		x = result.X
	}

	// Restore exact feasibility, then polish with projected gradient steps
	// on the true objective so the point is optimal within the polytope
	// rather than within the penalty surrogate.
	project(x, cs)
	refine(x, lambda, returns, cov, cs)

	// Absorb any residual solver drift, per the adapter contract.
	sum := floats.Sum(x)
	if sum <= 0 || math.IsNaN(sum) {
		return nil, ErrNotConverged
	}
	floats.Scale(1/sum, x)

	ret := floats.Dot(returns, x)
	risk := math.Sqrt(math.Max(quadraticForm(x, cov), 0))
	return &SolveResult{Weights: x, Return: ret, Risk: risk}, nil
}

func accepted(status optimize.Status) bool {
	switch status {
	case optimize.Success, optimize.GradientThreshold, optimize.FunctionConvergence, optimize.StepConvergence:
		return true
	}
	return false
}

// quadraticForm computes w' Sigma w.
func quadraticForm(w []float64, cov *mat.SymDense) float64 {
	var total float64
	for i := range w {
		for j := range w {
			total += w[i] * w[j] * cov.At(i, j)
		}
	}
	return total
}

// penalizedObjective is the smooth surrogate: the mean-variance objective
// plus quadratic penalties on the sum-to-1 equality, the box bounds, and the
// bucket envelopes.
func penalizedObjective(lambda float64, mu []float64, cov *mat.SymDense, cs ConstraintSystem, w []float64) float64 {
	obj := lambda*quadraticForm(w, cov) - floats.Dot(mu, w)

	sum := floats.Sum(w)
	obj += penaltyWeight * (sum - 1) * (sum - 1)

	for i, b := range cs.Bounds {
		if d := b.Lower - w[i]; d > 0 {
			obj += penaltyWeight * d * d
		}
		if d := w[i] - b.Upper; d > 0 {
			obj += penaltyWeight * d * d
		}
	}

	for _, bucket := range cs.Buckets {
		s := sumAt(w, bucket.Indices)
		if d := bucket.Min - s; d > 0 {
			obj += penaltyWeight * d * d
		}
		if d := s - bucket.Max; d > 0 {
			obj += penaltyWeight * d * d
		}
	}

	return obj
}

func penalizedGradient(lambda float64, mu []float64, cov *mat.SymDense, cs ConstraintSystem, w, grad []float64) {
	n := len(w)
	for i := 0; i < n; i++ {
		g := -mu[i]
		for j := 0; j < n; j++ {
			g += 2 * lambda * cov.At(i, j) * w[j]
		}
		grad[i] = g
	}

	sum := floats.Sum(w)
	for i := range grad {
		grad[i] += 2 * penaltyWeight * (sum - 1)
	}

	for i, b := range cs.Bounds {
		if d := b.Lower - w[i]; d > 0 {
			grad[i] -= 2 * penaltyWeight * d
		}
		if d := w[i] - b.Upper; d > 0 {
			grad[i] += 2 * penaltyWeight * d
		}
	}

	for _, bucket := range cs.Buckets {
		s := sumAt(w, bucket.Indices)
		if d := bucket.Min - s; d > 0 {
			for _, i := range bucket.Indices {
				grad[i] -= 2 * penaltyWeight * d
			}
		}
		if d := s - bucket.Max; d > 0 {
			for _, i := range bucket.Indices {
				grad[i] += 2 * penaltyWeight * d
			}
		}
	}
}

// refine runs projected gradient descent on the true mean-variance objective.
// Each step projects back onto the constraint polytope, so the result is
// feasible to within projection tolerance no matter how the line-search
// methods fared.
func refine(w []float64, lambda float64, mu []float64, cov *mat.SymDense, cs ConstraintSystem) {
	n := len(w)

	// Lipschitz bound on the gradient of lambda * w'Sigma'w.
	var maxRowSum float64
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < n; j++ {
			rowSum += math.Abs(cov.At(i, j))
		}
		if rowSum > maxRowSum {
			maxRowSum = rowSum
		}
	}
	step := 1 / math.Max(2*lambda*maxRowSum, 1e-6)

	grad := make([]float64, n)
	next := make([]float64, n)
	for iter := 0; iter < refineIterations; iter++ {
		for i := 0; i < n; i++ {
			g := -mu[i]
			for j := 0; j < n; j++ {
				g += 2 * lambda * cov.At(i, j) * w[j]
			}
			grad[i] = g
		}
		for i := 0; i < n; i++ {
			next[i] = w[i] - step*grad[i]
		}
		project(next, cs)

		var delta float64
		for i := 0; i < n; i++ {
			if d := math.Abs(next[i] - w[i]); d > delta {
				delta = d
			}
		}
		copy(w, next)
		if delta < 1e-12 {
			break
		}
	}
}

// project moves w to the nearest-by-alternation point of the constraint
// polytope: alternating projections onto the capped simplex
// {sum w = 1, lower <= w <= upper} and each bucket slab. The capped-simplex
// projection always runs last, so the sum and box bounds hold exactly.
func project(w []float64, cs ConstraintSystem) {
	for iter := 0; iter < projectMaxIterations; iter++ {
		projectCappedSimplex(w, cs.Bounds)

		moved := false
		for _, bucket := range cs.Buckets {
			s := sumAt(w, bucket.Indices)
			if s > bucket.Max+feasibilityTol {
				shift := (s - bucket.Max) / float64(len(bucket.Indices))
				for _, i := range bucket.Indices {
					w[i] -= shift
				}
				moved = true
			} else if s < bucket.Min-feasibilityTol {
				shift := (bucket.Min - s) / float64(len(bucket.Indices))
				for _, i := range bucket.Indices {
					w[i] += shift
				}
				moved = true
			}
		}
		if !moved {
			return
		}
	}
	projectCappedSimplex(w, cs.Bounds)
}

// projectCappedSimplex projects x onto {w : sum w = 1, lower <= w <= upper}
// by bisecting on the uniform shift tau in w_i = clamp(x_i + tau).
func projectCappedSimplex(x []float64, bounds []Bound) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, b := range bounds {
		if t := b.Lower - x[i]; t < lo {
			lo = t
		}
		if t := b.Upper - x[i]; t > hi {
			hi = t
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	shiftedSum := func(tau float64) float64 {
		var s float64
		for i, b := range bounds {
			s += math.Min(math.Max(x[i]+tau, b.Lower), b.Upper)
		}
		return s
	}

	for iter := 0; iter < bisectIterations; iter++ {
		mid := (lo + hi) / 2
		if shiftedSum(mid) > 1 {
			hi = mid
		} else {
			lo = mid
		}
	}

	tau := (lo + hi) / 2
	for i, b := range bounds {
		x[i] = math.Min(math.Max(x[i]+tau, b.Lower), b.Upper)
	}
}

func sumAt(w []float64, indices []int) float64 {
	var s float64
	for _, i := range indices {
		s += w[i]
	}
	return s
}
