package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskify-app/taskify-api/internal/dto"
	"github.com/taskify-app/taskify-api/internal/logger"
	"github.com/taskify-app/taskify-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	log         *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register creates a new user account and returns its first token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", validationMessages(err)...))
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, dto.ErrorResponse("Username or email already exists"))
		default:
			h.log.Error("registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse("An internal server error occurred. Please try again later."))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse(
		dto.NewAuthResponse(result.User, result.Token, result.ExpiresAt),
		"User registered successfully"))
}

// Login authenticates a user and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", validationMessages(err)...))
		return
	}

	result, err := h.authService.Login(req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Invalid username/email or password"))
			return
		}
		h.log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse("An internal server error occurred. Please try again later."))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(
		dto.NewAuthResponse(result.User, result.Token, result.ExpiresAt),
		"Login successful"))
}

// Validate checks a token passed as a bare JSON string body.
func (h *AuthHandler) Validate(c *gin.Context) {
	var token string
	if err := c.ShouldBindJSON(&token); err != nil || token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse("Validation failed", "token is required"))
		return
	}

	if !h.authService.ValidateToken(token) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Invalid or expired token"))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"valid": true}, "Token is valid"))
}
