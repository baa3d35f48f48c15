// Recovers panics, answers 500 without leaking the stack, logs with request_id.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/i18n"
	"github.com/connectvan/backend/internal/response"
)

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(string(ContextKeyRequestID))),
					zap.Any("panic", err),
					zap.Stack("stack"),
				)
				response.AbortWithError(c, http.StatusInternalServerError,
					i18n.T(c.GetString(string(ContextKeyLanguage)), "error.internal"))
			}
		}()
		c.Next()
	}
}
