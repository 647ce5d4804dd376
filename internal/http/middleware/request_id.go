package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey — ключ, под которым идентификатор запроса лежит в контексте gin.
const RequestIDKey = "requestID"

// RequestIDHeader — заголовок, в котором идентификатор уходит клиенту.
const RequestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу UUID и отдаёт его в заголовке ответа.
// Если клиент прислал свой X-Request-ID, используем его.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
