package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set("request-id", id)
	c.Header(requestIDHeader, id)

	c.Next()
}

func (h *Handler) loggingMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	h.logger.Sugar().Infof(
		"%s %s -> %d (%s) request-id=%s",
		c.Request.Method,
		c.Request.URL.Path,
		c.Writer.Status(),
		time.Since(start),
		c.GetString("request-id"),
	)
}
