package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awheeler/frontier/internal/models"
	"github.com/awheeler/frontier/internal/optimization"
	"github.com/awheeler/frontier/internal/services"
)

// OptimizationHandler handles frontier and analytics endpoints
type OptimizationHandler struct {
	optimizationSvc *services.OptimizationService
}

// NewOptimizationHandler creates a new OptimizationHandler
func NewOptimizationHandler(optimizationSvc *services.OptimizationService) *OptimizationHandler {
	return &OptimizationHandler{
		optimizationSvc: optimizationSvc,
	}
}

// ComputeFrontier handles POST /frontier
// @Summary Compute an efficient frontier
// @Description Sweep the risk-aversion parameter and return the efficient risk/return curve with per-point allocations
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.FrontierRequest true "Frontier parameters"
// @Success 200 {object} models.FrontierResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /frontier [post]
func (h *OptimizationHandler) ComputeFrontier(c *gin.Context) {
	var req models.FrontierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	frontier, err := h.optimizationSvc.ComputeFrontier(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUniverseTooSmall) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.FrontierResponse{
		Frontier: frontier,
		Warnings: wc.GetWarnings(),
	})
}

// ComputeMetrics handles POST /metrics
// @Summary Compute portfolio metrics
// @Description Evaluate expected return, risk, VaR, CVaR and Sharpe ratio for arbitrary holdings
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.MetricsRequest true "Holdings keyed by asset class"
// @Success 200 {object} models.MetricsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /metrics [post]
func (h *OptimizationHandler) ComputeMetrics(c *gin.Context) {
	var req models.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	metrics, err := h.optimizationSvc.ComputeMetrics(ctx, req.Holdings)
	if err != nil {
		if errors.Is(err, services.ErrNoKnownHoldings) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MetricsResponse{
		Metrics:  metrics,
		Warnings: wc.GetWarnings(),
	})
}

// Resample handles POST /frontier/resample
// @Summary Resample the frontier under return uncertainty
// @Description Perturb expected returns with Gaussian noise and return the resulting risk/return scatter
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.ResampleRequest true "Resampling parameters"
// @Success 200 {object} models.ResampleResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /frontier/resample [post]
func (h *OptimizationHandler) Resample(c *gin.Context) {
	var req models.ResampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	points, err := h.optimizationSvc.Resample(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUniverseTooSmall) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ResampleResponse{
		Points:   points,
		Warnings: wc.GetWarnings(),
	})
}

// OptimalPortfolio handles POST /frontier/optimal
// @Summary Select an optimal portfolio
// @Description Compute a frontier and pick the point matching the target return or risk, or the maximum Sharpe ratio
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.OptimalPortfolioRequest true "Selection parameters"
// @Success 200 {object} optimization.OptimalSelection
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /frontier/optimal [post]
func (h *OptimizationHandler) OptimalPortfolio(c *gin.Context) {
	var req models.OptimalPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, _ := services.NewWarningContext(c.Request.Context())
	selection, err := h.optimizationSvc.OptimalPortfolio(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUniverseTooSmall) || errors.Is(err, optimization.ErrEmptyFrontier) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, selection)
}

// BlendedBenchmark handles POST /benchmark
// @Summary Build a blended benchmark
// @Description Combine an equity and a fixed-income asset class into a two-asset benchmark portfolio
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.BenchmarkRequest true "Benchmark composition"
// @Success 200 {object} optimization.BlendedBenchmark
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /benchmark [post]
func (h *OptimizationHandler) BlendedBenchmark(c *gin.Context) {
	var req models.BenchmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	if req.EquityAllocation < 0 || req.EquityAllocation > 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "equity_allocation must be between 0 and 1",
		})
		return
	}

	benchmark, err := h.optimizationSvc.BlendedBenchmark(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, benchmark)
}

// Inefficiencies handles POST /inefficiencies
// @Summary Detect allocation inefficiencies
// @Description Flag holdings whose proposed allocation drifts from the current allocation and the benchmark
// @Tags optimization
// @Accept json
// @Produce json
// @Param request body models.InefficiencyRequest true "Current and proposed holdings"
// @Success 200 {object} []optimization.InefficiencyFlag
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /inefficiencies [post]
func (h *OptimizationHandler) Inefficiencies(c *gin.Context) {
	var req models.InefficiencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	flags, err := h.optimizationSvc.Inefficiencies(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	if flags == nil {
		flags = []optimization.InefficiencyFlag{}
	}

	c.JSON(http.StatusOK, flags)
}
