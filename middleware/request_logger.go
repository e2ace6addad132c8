package middleware

import (
	"github.com/krharsh17/alexa-flight-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware attaches a request-scoped logger carrying a
// generated request id, for correlation across a single invocation.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		logger := utils.GetLogger().With(
			zap.String("requestId", requestID),
			zap.String("path", c.Request.URL.Path),
		)
		c.Set("logger", logger)
		c.Header("X-Request-Id", requestID)
		c.Next()
	}
}
