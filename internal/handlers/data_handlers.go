package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awheeler/frontier/internal/models"
	"github.com/awheeler/frontier/internal/services"
)

// DataHandler handles catalog data endpoints
type DataHandler struct {
	optimizationSvc *services.OptimizationService
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(optimizationSvc *services.OptimizationService) *DataHandler {
	return &DataHandler{
		optimizationSvc: optimizationSvc,
	}
}

// ListAssets handles GET /assets
// @Summary List available asset classes
// @Description List the asset class names in the requested universe
// @Tags data
// @Produce json
// @Param mode query string false "Universe mode (core, core_private, unconstrained)"
// @Success 200 {object} models.AssetListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /assets [get]
func (h *DataHandler) ListAssets(c *gin.Context) {
	mode := models.UniverseMode(c.DefaultQuery("mode", string(models.UniverseModeCore)))

	names, err := h.optimizationSvc.Assets(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.AssetListResponse{
		Assets: names,
		Count:  len(names),
	})
}

// GetCMAData handles GET /cma
// @Summary Get capital market assumptions
// @Description Return expected return, risk, bucket and cap for every asset class
// @Tags data
// @Produce json
// @Success 200 {object} []models.AssetClass
// @Failure 500 {object} models.ErrorResponse
// @Router /cma [get]
func (h *DataHandler) GetCMAData(c *gin.Context) {
	assets, err := h.optimizationSvc.CMAData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetCorrelations handles GET /correlations
// @Summary Get the correlation matrix
// @Description Return the pairwise correlation table for all asset classes
// @Tags data
// @Produce json
// @Success 200 {object} models.CorrelationMatrix
// @Failure 500 {object} models.ErrorResponse
// @Router /correlations [get]
func (h *DataHandler) GetCorrelations(c *gin.Context) {
	correlations, err := h.optimizationSvc.CorrelationMatrix(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, correlations)
}
