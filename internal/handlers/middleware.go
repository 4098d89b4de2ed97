package handlers

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "requestId"
	maxRequestIDLen = 128
)

// requestIDMiddleware echoes a caller supplied X-Request-ID or generates one.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
		"request_id", requestID(c),
	)
}

// recoveryMiddleware turns panics into 500 responses. In debug mode the
// panic value is returned to the client as well.
func (h *Handler) recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		if h.log != nil {
			h.log.Errorw("panic_recovered",
				"panic", recovered,
				"path", c.Request.URL.Path,
				"request_id", requestID(c),
				"stack", string(debug.Stack()),
			)
		}
		resp := gin.H{"error": errInternal}
		if h.opts.Debug {
			resp["panic"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
