package handlers

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Path placeholders.
const (
	paramUsername = "username"
	paramUserID   = "user_id"
	paramName     = "name"
)

// requireUintParam rejects requests whose path segment is not a base-10
// unsigned integer with a 404, so the next handler never sees bad input.
// The parsed value is stored in the context under the parameter name.
func (h *Handler) requireUintParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := parseUintSegment(c.Param(param))
		if !ok {
			h.notFound(c)
			return
		}
		c.Set(param, v)
		c.Next()
	}
}

// parseUintSegment accepts ASCII digits only, of any length. Signs, spaces
// and non-ASCII digits are rejected.
func parseUintSegment(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

// @Summary      Home greeting
// @Tags         greetings
// @Produce      plain
// @Success      200  {string}  string  "Hello, Flask!"
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	c.String(http.StatusOK, h.services.Home(c.Request.Context()))
}

// @Summary      Greet a user by name
// @Tags         greetings
// @Produce      plain
// @Param        username  path  string  true  "Any single path segment"
// @Success      200  {string}  string  "Hello, {username}"
// @Router       /hello/{username} [get]
func (h *Handler) helloUser(c *gin.Context) {
	c.String(http.StatusOK, h.services.HelloUser(c.Request.Context(), c.Param(paramUsername)))
}

// @Summary      Greet a user by numeric id
// @Tags         greetings
// @Produce      plain
// @Param        user_id  path  integer  true  "Unsigned base-10 integer of any size"
// @Success      200  {string}  string  "User ID: {user_id}"
// @Failure      404  {object}  map[string]string
// @Router       /hello-user-id/{user_id} [get]
func (h *Handler) helloUserID(c *gin.Context) {
	userID := c.MustGet(paramUserID).(*big.Int)
	c.String(http.StatusOK, h.services.HelloUserID(c.Request.Context(), userID))
}
