// README: Recovery middleware turns handler panics into a JSON 500.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":        http.StatusInternalServerError,
					"status":      "error",
					"message":     "Internal server error",
					"description": "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
