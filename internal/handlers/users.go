package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List users
// @Tags         api
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.ListUsers(c.Request.Context()))
}
