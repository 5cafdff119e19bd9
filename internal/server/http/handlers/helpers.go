package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/resi/internal/pkg/auth"
	"github.com/polkiloo/resi/internal/server/http/dto"
	"github.com/polkiloo/resi/internal/server/http/middleware"
)

const msgServerError = "Server error"

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return 0
	}
	identity, _ := val.(pkgAuth.Identity)
	return identity.UserID
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

// internalError logs err with request context and answers with a generic 500.
func internalError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.ErrorContext(c.Request.Context(), op+" failed",
		slog.String("error", err.Error()),
		slog.Int64("user_id", CurrentUserID(c)),
		slog.String("request_id", c.GetString(middleware.RequestIDContextKey)),
	)
	respondMessage(c, http.StatusInternalServerError, msgServerError)
}
