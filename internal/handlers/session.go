package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/middleware"
	"github.com/innerlog/innerlog-api/internal/service"
)

// SessionHandler manages the persisted viewing-client selection for
// therapists and admins.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

type setViewingClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

// GetViewingClient returns the caller's persisted viewing-client selection.
// GET /api/v1/session/viewing-client
func (h *SessionHandler) GetViewingClient(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	selection, err := h.sessions.GetViewingClient(c.Request.Context(), user)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to read viewing selection", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	if selection == nil {
		c.JSON(http.StatusOK, gin.H{"client_id": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":  selection.ClientID,
		"updated_at": selection.UpdatedAt,
	})
}

// SetViewingClient persists a viewing-client selection after validating the
// caller's role and grant.
// PUT /api/v1/session/viewing-client
func (h *SessionHandler) SetViewingClient(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req setViewingClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "client_id", Message: "client_id is required", Code: "required"},
		}))
		return
	}

	err := h.sessions.SetViewingClient(c.Request.Context(), user, req.ClientID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientsCannotView):
			apierror.WriteProblem(c, apierror.NewForbiddenError(apierror.GetRequestID(c),
				"Clients can only view their own records"))
		case errors.Is(err, service.ErrNoClientGrant):
			apierror.WriteProblem(c, apierror.NewForbiddenError(apierror.GetRequestID(c),
				"You do not hold a grant for the requested client"))
		default:
			logger.Ctx(c.Request.Context()).Error("failed to persist viewing selection",
				logger.Err(err),
				logger.String("client_id", req.ClientID))
			apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_id": req.ClientID})
}

// ClearViewingClient removes the caller's persisted selection. Clearing an
// absent selection succeeds.
// DELETE /api/v1/session/viewing-client
func (h *SessionHandler) ClearViewingClient(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	if err := h.sessions.ClearViewingClient(c.Request.Context(), user); err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to clear viewing selection", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Status(http.StatusNoContent)
}
