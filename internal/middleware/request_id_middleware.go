package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок, в котором передается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу идентификатор для корреляции логов.
// Идентификатор клиента переиспользуется, если заголовок уже задан.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
