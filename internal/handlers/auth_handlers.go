package handlers

import (
	"net/http"
	"strings"

	"carmart/internal/common"
	"carmart/internal/repositories"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles signup, login and token refresh
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{authService: authService, userRepo: userRepo}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Signup handles POST /auth/signup
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return common.SendValidationError(c, "username", "username and email are required")
	}

	pair, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		if err == services.ErrUserExists {
			return common.SendConflictError(c, "Username or email already registered")
		}
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, pair)
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return common.SendUnauthorizedError(c)
		}
		return common.SendServerError(c, "Login failed")
	}
	return c.JSON(http.StatusOK, pair)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandlers) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.RefreshToken == "" {
		return common.SendValidationError(c, "refresh_token", "refresh_token is required")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if err == services.ErrInvalidToken {
			return common.SendUnauthorizedError(c)
		}
		return common.SendServerError(c, "Token refresh failed")
	}
	return c.JSON(http.StatusOK, pair)
}

// Me handles GET /me
func (h *AuthHandlers) Me(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil {
		return common.SendServerError(c, "Failed to load user")
	}
	if user == nil {
		return common.SendNotFoundError(c, "user")
	}
	return c.JSON(http.StatusOK, user)
}
