package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/middleware"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/service"
)

// ViewingClientHeader is the request-scoped viewing-client selection. It
// takes precedence over the persisted selection during resolution.
const ViewingClientHeader = "X-Viewing-Client-Id"

// resolveActiveUser determines whose records this request operates on. On
// failure it writes the problem response and returns false; handlers must
// not fetch anything in that case.
func resolveActiveUser(c *gin.Context, sessions service.SessionService) (*models.ActiveUser, bool) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return nil, false
	}

	active, err := sessions.Resolve(c.Request.Context(), user, c.GetHeader(ViewingClientHeader))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAuthenticatedUser):
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		case errors.Is(err, service.ErrNoClientGrant):
			apierror.WriteProblem(c, apierror.NewForbiddenError(apierror.GetRequestID(c),
				"You do not hold a grant for the requested client"))
		default:
			logger.Ctx(c.Request.Context()).Error("active-user resolution failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		}
		return nil, false
	}

	return active, true
}

// invalidRangeProblem builds the validation problem for a bad range query
// parameter.
func invalidRangeProblem(c *gin.Context, allowed string) *apierror.ProblemDetails {
	return apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
		{Field: "range", Message: "must be one of " + allowed, Code: "invalid_range"},
	})
}
