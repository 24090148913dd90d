package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/internal/application"
)

type AuthHandler struct {
	Creds  *application.CredentialService
	Logger *logrus.Logger
}

func NewAuthHandler(creds *application.CredentialService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Creds: creds, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/login
// Replies {message, token} or {error}; nothing else, so a failed attempt never
// reveals whether the username exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	res, err := h.Creds.Authenticate(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": res.Message, "token": res.Token})
	}
}
