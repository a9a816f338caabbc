package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func RegisterRoutes(r *gin.Engine, standup *StandupHandler, summary *SummaryHandler) {
	api := r.Group("/api")
	{
		api.GET("/channels", standup.GetChannels)
		api.GET("/messages/:channelId", standup.GetMessages)
		api.POST("/summary", summary.CreateSummary)
	}
	r.GET("/health", standup.GetHealth)
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
