package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
	"github.com/somnia-labs/sleep-insights-engine/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sleep-profile", h.Analyze)
}

// All fields optional; missing ones get defaults at the domain boundary.
type profileRequest struct {
	Bedtime     *string  `json:"bedtime"`
	WakeTime    *string  `json:"wakeTime"`
	SleepGoal   *float64 `json:"sleepGoal"`
	Lifestyle   *string  `json:"lifestyle"`
	SleepIssues []string `json:"sleepIssues"`
}

// Analyze godoc
// @Summary  Evaluate a sleep profile
// @Accept   json
// @Produce  json
// @Param    profile body profileRequest true "Partial sleep profile"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Router   /api/sleep-profile [post]
func (h *ProfileHandler) Analyze(c *gin.Context) {
	// A missing, unparseable, or empty-object body is "no profile data".
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil || len(raw) == 0 {
		respondError(c, http.StatusBadRequest, domain.ErrEmptyProfile.Error())
		return
	}

	var req profileRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := domain.NewSleepProfile(domain.ProfileInput{
		Bedtime:     req.Bedtime,
		WakeTime:    req.WakeTime,
		SleepGoal:   req.SleepGoal,
		Lifestyle:   req.Lifestyle,
		SleepIssues: req.SleepIssues,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidClock) || errors.Is(err, domain.ErrInvalidSleepGoal) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics, recommendations := h.svc.Evaluate(profile)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profile":         profile,
		"analysis":        metrics,
		"recommendations": recommendations,
	})
}
