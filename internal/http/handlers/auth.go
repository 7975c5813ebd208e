package handlers

import (
	"net/http"
	"time"

	"tripbuilder/internal/http/middleware"
	"tripbuilder/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := h.Auth(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    u.ToPublic(),
	})
}

// Login handles POST /api/auth/login. The token is returned in the body and
// also set as the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	res, err := h.Auth(c).Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, res.Token, maxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, res)
}

// Logout clears the session cookie. Bearer tokens stay valid until expiry.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
