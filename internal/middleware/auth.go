package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/innerlog/innerlog-api/internal/apierror"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

// ContextUserKey is the gin context key holding the authenticated
// *models.User.
const ContextUserKey = "user"

// Auth middleware verifies bearer tokens against the records backend and
// attaches the authenticated user (id, email, role) to the request.
func Auth(client *recordstore.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		verified, err := client.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		user := &models.User{
			ID:    verified.ID,
			Email: verified.Email,
			Role:  models.Role(verified.Role),
		}
		c.Set(ContextUserKey, user)

		// Add user ID to request context for logging
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserFromContext extracts the authenticated user set by Auth.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
