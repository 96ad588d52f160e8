package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"provalab/internal/auth"
	"provalab/internal/domain"
	"provalab/internal/repository/postgres"
	"provalab/internal/utils"
)

func SetupAuthRoutes(e *echo.Echo, storage *postgres.Storage, tokens *auth.TokenService, authMiddleware echo.MiddlewareFunc) {
	e.POST("/auth/signup", Signup(storage, tokens))
	e.POST("/auth/login", Login(storage, tokens))

	e.GET("/auth/me", GetCurrentUser(storage), authMiddleware)
}

// Signup godoc
// @Summary Register new user
// @Description Create a user account with its profile and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body domain.SignupRequest true "Signup details"
// @Success 201 {object} domain.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/signup [post]
func Signup(storage *postgres.Storage, tokens *auth.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.SignupRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to hash password"})
		}

		user, err := storage.CreateUser(c.Request().Context(), req.Email, string(hashedPassword))
		if errors.Is(err, utils.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": utils.ErrDuplicateEmail.Error()})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
		}

		if _, err := storage.CreateProfile(c.Request().Context(), user.ID, req.FullName); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create profile"})
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		return c.JSON(http.StatusCreated, domain.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// Login godoc
// @Summary Login
// @Description Verify credentials and return a session token. Failures stay generic so emails cannot be enumerated.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Login credentials (username is the email)"
// @Success 200 {object} domain.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func Login(storage *postgres.Storage, tokens *auth.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.LoginRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		// Unknown email and wrong password answer identically.
		user, err := storage.GetUserByEmail(c.Request().Context(), req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		}

		return c.JSON(http.StatusOK, domain.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// GetCurrentUser godoc
// @Summary Get current user
// @Description Return the authenticated user's identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func GetCurrentUser(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		user, err := storage.GetUserByID(c.Request().Context(), userID)
		if errors.Is(err, utils.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch user"})
		}

		return c.JSON(http.StatusOK, user)
	}
}
