package optimization

import (
	"github.com/awheeler/frontier/internal/models"
)

// feasibilityTol is the slack used when screening a constraint system for
// algebraic infeasibility.
const feasibilityTol = 1e-9

// Bound is a per-asset weight interval.
type Bound struct {
	Lower float64
	Upper float64
}

// BucketConstraint bounds the total weight of the assets in one
// risk-allocation bucket.
type BucketConstraint struct {
	Name    models.RiskAllocation
	Indices []int
	Min     float64
	Max     float64
}

// ConstraintSystem is the linear constraint description consumed by the
// solver: the implicit sum-to-1 equality, per-asset box bounds, and optional
// bucket envelopes.
type ConstraintSystem struct {
	Bounds  []Bound
	Buckets []BucketConstraint
}

// Assemble builds the constraint system for a resolved asset list. Each
// asset gets the box [0, capMax]. When bucketConfig is non-nil, one envelope
// per non-empty risk-allocation bucket is added; buckets without an explicit
// configuration get the default [0,1]. Assets whose riskAllocation is neither
// DIVERSIFIED nor GROWTH count as STABILITY.
func Assemble(assets []models.AssetClass, bucketConfig models.BucketConfig) ConstraintSystem {
	cs := ConstraintSystem{
		Bounds: make([]Bound, len(assets)),
	}
	for i, a := range assets {
		upper := a.CapMax
		if upper < 0 {
			upper = 0
		}
		if upper > 1 {
			upper = 1
		}
		cs.Bounds[i] = Bound{Lower: 0.0, Upper: upper}
	}

	if bucketConfig == nil {
		return cs
	}

	groups := map[models.RiskAllocation][]int{}
	for i, a := range assets {
		bucket := models.ParseRiskAllocation(string(a.RiskAllocation))
		groups[bucket] = append(groups[bucket], i)
	}

	for _, bucket := range []models.RiskAllocation{
		models.RiskAllocationStability,
		models.RiskAllocationDiversified,
		models.RiskAllocationGrowth,
	} {
		indices := groups[bucket]
		if len(indices) == 0 {
			continue
		}
		r := bucketConfig.Range(bucket)
		cs.Buckets = append(cs.Buckets, BucketConstraint{
			Name:    bucket,
			Indices: indices,
			Min:     r.Min,
			Max:     r.Max,
		})
	}

	return cs
}

// Feasible reports whether the constraint system admits at least one weight
// vector. The screen is algebraic: cap sums against the budget, bucket
// envelopes against member caps, and envelope sums when the buckets
// partition the assets.
func (cs ConstraintSystem) Feasible() bool {
	var sumLower, sumUpper float64
	for _, b := range cs.Bounds {
		if b.Lower > b.Upper+feasibilityTol {
			return false
		}
		sumLower += b.Lower
		sumUpper += b.Upper
	}
	if sumUpper < 1-feasibilityTol || sumLower > 1+feasibilityTol {
		return false
	}

	covered := 0
	var minSum, maxSum float64
	for _, bucket := range cs.Buckets {
		if bucket.Min > bucket.Max+feasibilityTol {
			return false
		}
		var memberCapSum float64
		for _, i := range bucket.Indices {
			memberCapSum += cs.Bounds[i].Upper
		}
		if bucket.Min > memberCapSum+feasibilityTol {
			return false
		}
		if bucket.Max < -feasibilityTol {
			return false
		}
		covered += len(bucket.Indices)
		minSum += bucket.Min
		maxSum += bucket.Max
	}

	// When the buckets cover every asset, their envelopes must jointly
	// admit a total weight of 1.
	if len(cs.Buckets) > 0 && covered == len(cs.Bounds) {
		if minSum > 1+feasibilityTol || maxSum < 1-feasibilityTol {
			return false
		}
	}

	return true
}
