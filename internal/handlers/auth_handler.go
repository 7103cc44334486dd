package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ridgelinesupply/pickup-scheduler/internal/config"
	"github.com/ridgelinesupply/pickup-scheduler/internal/httperr"
	"github.com/ridgelinesupply/pickup-scheduler/internal/staff"
)

type AuthHandler struct {
	directory *staff.Directory
	config    *config.Config
}

func NewAuthHandler(directory *staff.Directory, cfg *config.Config) *AuthHandler {
	return &AuthHandler{directory: directory, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	user, ok := h.directory.FindByEmail(req.Email)
	if !ok || !h.directory.VerifyPassword(user, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	claims := jwt.MapClaims{
		"sub":  user.Email,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_signing_failed", "Could not sign session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
