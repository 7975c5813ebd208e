package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /api/users (admin).
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Auth(c).ListUsers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
