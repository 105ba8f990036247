package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
	"github.com/somnia-labs/sleep-insights-engine/internal/core/services"
)

type AnalysisHandler struct {
	svc *services.AnalysisService
}

func NewAnalysisHandler(svc *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

func (h *AnalysisHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sleep-data", h.ListData)
	r.GET("/sleep-analysis", h.AnalyzeDataset)
	r.GET("/sleep-insights/:age/:gender", h.CohortInsights)
}

// ListData godoc
// @Summary  Raw sleep dataset
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]interface{}
// @Router   /api/sleep-data [get]
func (h *AnalysisHandler) ListData(c *gin.Context) {
	records, err := h.svc.ListRecords(c.Request.Context())
	if err != nil {
		respondDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"count":   len(records),
	})
}

// AnalyzeDataset godoc
// @Summary  Descriptive statistics over the whole dataset
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} map[string]interface{}
// @Router   /api/sleep-analysis [get]
func (h *AnalysisHandler) AnalyzeDataset(c *gin.Context) {
	analysis, err := h.svc.AnalyzeDataset(c.Request.Context())
	if err != nil {
		respondDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

// CohortInsights godoc
// @Summary  Cohort-filtered insights with recommendations
// @Produce  json
// @Param    age    path int    true "Target age"
// @Param    gender path string true "Gender filter, or 'all'"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Failure  404 {object} map[string]interface{}
// @Router   /api/sleep-insights/{age}/{gender} [get]
func (h *AnalysisHandler) CohortInsights(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "age must be an integer")
		return
	}

	filter := domain.CohortFilter{
		Age:    age,
		Gender: c.Param("gender"),
	}

	insights, err := h.svc.CohortInsights(c.Request.Context(), filter)
	if err != nil {
		respondDataError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"insights": insights,
	})
}

// respondDataError maps data-availability failures to 404 and everything
// else to a generic 500, keeping the {success, error} envelope.
func respondDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDataSourceMissing), errors.Is(err, domain.ErrNoMatchingRecords):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
