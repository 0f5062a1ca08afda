package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/service"
)

// InsightsHandler serves the aggregated progress summary.
type InsightsHandler struct {
	insights service.InsightsService
	sessions service.SessionService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights service.InsightsService, sessions service.SessionService) *InsightsHandler {
	return &InsightsHandler{
		insights: insights,
		sessions: sessions,
	}
}

// GetSummary returns the full progress summary for the active user.
// GET /api/v1/insights/summary?range=week|month|all
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	active, ok := resolveActiveUser(c, h.sessions)
	if !ok {
		return
	}

	rng, ok := models.ParseInsightRange(c.Query("range"))
	if !ok {
		apierror.WriteProblem(c, invalidRangeProblem(c, "week, month, all"))
		return
	}

	summary, err := h.insights.GetProgressSummary(c.Request.Context(), active.UserID, rng)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build progress summary",
			logger.Err(err),
			logger.String("user_id", active.UserID),
			logger.String("range", string(rng)))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, summary)
}
