package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/service"
)

// TrendsHandler serves calendar-bucketed trend series.
type TrendsHandler struct {
	trends   service.TrendsService
	sessions service.SessionService
}

// NewTrendsHandler creates a new trends handler
func NewTrendsHandler(trends service.TrendsService, sessions service.SessionService) *TrendsHandler {
	return &TrendsHandler{
		trends:   trends,
		sessions: sessions,
	}
}

// GetMoodTrend returns emotion intensity per calendar bucket.
// GET /api/v1/trends/mood?range=week|month|year
func (h *TrendsHandler) GetMoodTrend(c *gin.Context) {
	h.serveTrend(c, h.trends.GetMoodTrend)
}

// GetPracticeTrend returns practice accuracy per calendar bucket.
// GET /api/v1/trends/practice?range=week|month|year
func (h *TrendsHandler) GetPracticeTrend(c *gin.Context) {
	h.serveTrend(c, h.trends.GetPracticeTrend)
}

// GetJournalTrend returns journal entry counts per calendar bucket.
// GET /api/v1/trends/journal?range=week|month|year
func (h *TrendsHandler) GetJournalTrend(c *gin.Context) {
	h.serveTrend(c, h.trends.GetJournalTrend)
}

func (h *TrendsHandler) serveTrend(c *gin.Context, fetch func(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error)) {
	active, ok := resolveActiveUser(c, h.sessions)
	if !ok {
		return
	}

	rng, ok := models.ParseTrendRange(c.Query("range"))
	if !ok {
		apierror.WriteProblem(c, invalidRangeProblem(c, "week, month, year"))
		return
	}

	series, err := fetch(c.Request.Context(), active.UserID, rng)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to build trend series",
			logger.Err(err),
			logger.String("user_id", active.UserID),
			logger.String("range", string(rng)))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, series)
}
