package handler

import (
	"crypto/subtle"

	"github.com/Benjafo/TimeClock/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// AuthHandler issues operator tokens for the admin API.
type AuthHandler struct {
	jwtSecret        string
	expireHours      int
	operatorPassword string
}

func NewAuthHandler(jwtSecret string, expireHours int, operatorPassword string) *AuthHandler {
	return &AuthHandler{
		jwtSecret:        jwtSecret,
		expireHours:      expireHours,
		operatorPassword: operatorPassword,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "password is required")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.operatorPassword)) != 1 {
		Unauthorized(c, 40100, "wrong password")
		return
	}

	token, expireAt, err := jwt.GenerateToken(h.jwtSecret, h.expireHours)
	if err != nil {
		InternalError(c, "generate token failed")
		return
	}
	Success(c, gin.H{"token": token, "expires_at": expireAt})
}
