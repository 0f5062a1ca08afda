package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/service"
)

// RecordsHandler serves normalized record lists for the active user.
type RecordsHandler struct {
	records  service.RecordsService
	sessions service.SessionService
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(records service.RecordsService, sessions service.SessionService) *RecordsHandler {
	return &RecordsHandler{
		records:  records,
		sessions: sessions,
	}
}

// ListEmotions returns emotion records for the active user.
// GET /api/v1/emotions?range=week|month|all
func (h *RecordsHandler) ListEmotions(c *gin.Context) {
	active, rng, ok := h.prepare(c)
	if !ok {
		return
	}

	emotions, err := h.records.ListEmotions(c.Request.Context(), active.UserID, rng)
	if err != nil {
		h.writeListError(c, "emotions", active.UserID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

// ListThoughts returns thought records for the active user.
// GET /api/v1/thoughts?range=week|month|all
func (h *RecordsHandler) ListThoughts(c *gin.Context) {
	active, rng, ok := h.prepare(c)
	if !ok {
		return
	}

	thoughts, err := h.records.ListThoughts(c.Request.Context(), active.UserID, rng)
	if err != nil {
		h.writeListError(c, "thoughts", active.UserID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"thoughts": thoughts})
}

// ListJournals returns journal entries for the active user.
// GET /api/v1/journals?range=week|month|all
func (h *RecordsHandler) ListJournals(c *gin.Context) {
	active, rng, ok := h.prepare(c)
	if !ok {
		return
	}

	journals, err := h.records.ListJournals(c.Request.Context(), active.UserID, rng)
	if err != nil {
		h.writeListError(c, "journals", active.UserID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journals": journals})
}

// ListGoals returns goals for the active user.
// GET /api/v1/goals?range=week|month|all
func (h *RecordsHandler) ListGoals(c *gin.Context) {
	active, rng, ok := h.prepare(c)
	if !ok {
		return
	}

	goals, err := h.records.ListGoals(c.Request.Context(), active.UserID, rng)
	if err != nil {
		h.writeListError(c, "goals", active.UserID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// ListPracticeResults returns practice results for the active user.
// GET /api/v1/practice-results?range=week|month|all
func (h *RecordsHandler) ListPracticeResults(c *gin.Context) {
	active, rng, ok := h.prepare(c)
	if !ok {
		return
	}

	results, err := h.records.ListPracticeResults(c.Request.Context(), active.UserID, rng)
	if err != nil {
		h.writeListError(c, "practice results", active.UserID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"practice_results": results})
}

func (h *RecordsHandler) prepare(c *gin.Context) (*models.ActiveUser, models.InsightRange, bool) {
	active, ok := resolveActiveUser(c, h.sessions)
	if !ok {
		return nil, models.RangeAll, false
	}

	rng, ok := models.ParseInsightRange(c.Query("range"))
	if !ok {
		apierror.WriteProblem(c, invalidRangeProblem(c, "week, month, all"))
		return nil, models.RangeAll, false
	}

	return active, rng, true
}

func (h *RecordsHandler) writeListError(c *gin.Context, kind, userID string, err error) {
	logger.Ctx(c.Request.Context()).Error("failed to list "+kind,
		logger.Err(err),
		logger.String("user_id", userID))
	apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
}
