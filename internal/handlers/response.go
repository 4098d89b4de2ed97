package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errNotFound         = "not found"
	errMethodNotAllowed = "method not allowed"
	errInternal         = "internal server error"
	errRenderPage       = "failed to render page"
	errMissingFieldPref = "missing form field: "

	contentTypeHTML = "text/html; charset=utf-8"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestID(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.AbortWithStatusJSON(httpCode, gin.H{"error": userMsg})
}

// renderHTML renders the named template and writes it as a 200 response.
func (h *Handler) renderHTML(c *gin.Context, name string, data any) {
	body, err := h.views.Render(name, data)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderPage, "render_failed", err, "template", name)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, body)
}

func (h *Handler) notFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": errNotFound})
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed})
}
