package optimization

import (
	"errors"
	"fmt"
	"math"

	"github.com/awheeler/frontier/internal/models"
)

// ErrEmptyFrontier signals that optimal-portfolio selection was asked to
// choose from a frontier with no points.
var ErrEmptyFrontier = errors.New("empty frontier")

// OptimalSelection is the frontier point chosen by FindOptimalPortfolio,
// with the criterion that selected it.
type OptimalSelection struct {
	Index           int                `json:"index"`
	Return          float64            `json:"return"`
	Risk            float64            `json:"risk"`
	SharpeRatio     float64            `json:"sharpe_ratio"`
	Weights         map[string]float64 `json:"weights"`
	SelectionMethod string             `json:"selection_method"`
}

// FindOptimalPortfolio picks one point off a computed frontier. With a
// target return, it picks the minimum-risk point achieving it (best return
// if unachievable); with a target risk, the maximum-return point within it
// (minimum risk if none qualifies); with neither, the maximum-Sharpe point.
func FindOptimalPortfolio(frontier *models.Frontier, targetReturn, targetRisk *float64, riskFreeRate float64) (*OptimalSelection, error) {
	if frontier == nil || len(frontier.Points) == 0 {
		return nil, ErrEmptyFrontier
	}

	points := frontier.Points
	sharpe := func(p models.FrontierPoint) float64 {
		return (p.Return - riskFreeRate) / math.Max(p.Risk, 1e-10)
	}

	var idx int
	var method string
	switch {
	case targetReturn != nil:
		method = fmt.Sprintf("target_return=%g", *targetReturn)
		idx = -1
		for i, p := range points {
			if p.Return < *targetReturn {
				continue
			}
			if idx < 0 || p.Risk < points[idx].Risk {
				idx = i
			}
		}
		if idx < 0 {
			// Target not achievable: fall back to the best return.
			idx = 0
			for i := range points {
				if points[i].Return > points[idx].Return {
					idx = i
				}
			}
		}

	case targetRisk != nil:
		method = fmt.Sprintf("target_risk=%g", *targetRisk)
		idx = -1
		for i, p := range points {
			if p.Risk > *targetRisk {
				continue
			}
			if idx < 0 || p.Return > points[idx].Return {
				idx = i
			}
		}
		if idx < 0 {
			// Target not achievable: fall back to the minimum risk.
			idx = 0
			for i := range points {
				if points[i].Risk < points[idx].Risk {
					idx = i
				}
			}
		}

	default:
		method = "max_sharpe"
		for i, p := range points {
			if sharpe(p) > sharpe(points[idx]) {
				idx = i
			}
		}
	}

	chosen := points[idx]
	return &OptimalSelection{
		Index:           idx,
		Return:          chosen.Return,
		Risk:            chosen.Risk,
		SharpeRatio:     sharpe(chosen),
		Weights:         chosen.Allocations,
		SelectionMethod: method,
	}, nil
}
