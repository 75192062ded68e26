package delivery

import (
	"errors"
	"io"
	"net/http"
	"strings"

	authdomain "contactbook-backend/internal/auth/domain"
	authdto "contactbook-backend/internal/auth/dto"
	"contactbook-backend/internal/auth/token"
	"contactbook-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup registers a new user
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Signup(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": authdomain.ErrEmailTaken.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, authdto.SignupResponse{
		User:   user,
		Detail: "User successfully created. Check your email for confirmation.",
	})
}

// Login verifies credentials and returns an access/refresh pair
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) || errors.Is(err, authdomain.ErrEmailNotConfirmed) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh rotates a refresh token presented as a bearer credential
// GET /api/auth/refresh_token
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
		return
	}

	tokens, err := h.authUsecase.Refresh(parts[1])
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) || errors.Is(err, token.ErrTokenExpired) || errors.Is(err, token.ErrScopeMismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrUnauthenticated.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// ConfirmEmail confirms a user's email via the emailed token
// GET /api/auth/confirmed_email/:token
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	already, err := h.authUsecase.ConfirmEmail(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": authdomain.ErrVerificationFailed.Error()})
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Your email is already confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// RequestEmail re-sends the confirmation email
// POST /api/auth/request_email
func (h *AuthHandler) RequestEmail(c *gin.Context) {
	var req authdto.RequestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	already, err := h.authUsecase.RequestConfirmation(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": authdomain.ErrVerificationFailed.Error()})
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Your email already confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check your email for confirmation."})
}

// Me returns the authenticated user
// GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// UpdateAvatar uploads a new avatar image for the authenticated user
// PATCH /api/users/avatar
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateAvatar(c.Request.Context(), CurrentUser(c), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
