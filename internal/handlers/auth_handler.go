package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/middleware"
	"budgetly/internal/models"
	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	tokens      *middleware.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens *middleware.TokenIssuer) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

// SignupRequest represents the registration request payload
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name" binding:"required,notblank,max=100"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request payload
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse carries a freshly issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse represents the authentication response with tokens
type AuthResponse struct {
	TokenResponse
	User UserResponse `json:"user"`
}

// ProfileResponse wraps the authenticated user's profile
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, CreatedAt: user.CreatedAt}
}

// Signup handles user registration
// @Summary     Register a new user
// @Description Register a new user with email, password and name
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and tokens issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{TokenResponse: *tokens, User: toUserResponse(user)})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and tokens issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	user, err := h.userService.AttemptLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{TokenResponse: *tokens, User: toUserResponse(user)})
}

// Refresh exchanges a refresh token for a new token pair. The old refresh
// token stops working once the new one is stored.
// @Summary     Refresh tokens
// @Description Rotate the refresh token and issue a new access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Refresh token"
// @Success     200 {object} TokenResponse "New token pair"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid or reused refresh token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, validator.BindingError(err))
		return
	}

	claims, err := h.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	ctx := c.Request.Context()
	stored, err := h.userService.GetRefreshTokenHash(ctx, claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}
	presented := middleware.HashToken(req.RefreshToken)
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetUserByID(ctx, claims.UserID)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidToken)
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthenticated"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{User: toUserResponse(user)})
}

// issueTokens signs a new token pair and stores the refresh token hash.
func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) (*TokenResponse, error) {
	accessToken, err := h.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := h.userService.StoreRefreshTokenHash(c.Request.Context(), user.ID, middleware.HashToken(refreshToken)); err != nil {
		return nil, err
	}
	return &TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
