package handlers

import (
	"net/http"

	"greeter/internal/views"

	"github.com/gin-gonic/gin"
)

const formFieldName = "name"

// postFormOrBadRequest reads a required form field and writes a 400 JSON when
// it is absent. An empty but present value is accepted.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) postFormOrBadRequest(c *gin.Context, key string) (string, bool) {
	v, ok := c.GetPostForm(key)
	if !ok {
		if h.log != nil {
			h.log.Infow("form_missing_field", "field", key, "request_id", requestID(c))
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errMissingFieldPref + key})
		return "", false
	}
	return v, true
}

// @Summary      Welcome page
// @Tags         pages
// @Produce      html
// @Param        name  path  string  true  "Name shown on the page"
// @Success      200  {string}  string  "HTML document"
// @Failure      500  {object}  map[string]string
// @Router       /welcome/{name} [get]
func (h *Handler) welcome(c *gin.Context) {
	h.renderHTML(c, views.Home, gin.H{"name": c.Param(paramName)})
}

// @Summary      Greeting form
// @Tags         pages
// @Produce      html
// @Success      200  {string}  string  "HTML form"
// @Failure      500  {object}  map[string]string
// @Router       /form [get]
func (h *Handler) formPage(c *gin.Context) {
	h.renderHTML(c, views.Form, nil)
}

// @Summary      Submit the greeting form
// @Tags         pages
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        name  formData  string  true  "Name to greet"
// @Success      200  {string}  string  "Hello, {name}!"
// @Failure      400  {object}  map[string]string
// @Router       /form [post]
func (h *Handler) submitForm(c *gin.Context) {
	name, ok := h.postFormOrBadRequest(c, formFieldName)
	if !ok {
		return
	}
	c.String(http.StatusOK, h.services.FormGreeting(c.Request.Context(), name))
}
