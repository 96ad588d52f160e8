package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"provalab/internal/domain"
	"provalab/internal/repository/postgres"
	"provalab/internal/utils"
)

func SetupProfileRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/profiles", authMiddleware)

	g.GET("/me", GetMyProfile(storage))
	g.PUT("/me", UpdateMyProfile(storage))
}

// GetMyProfile godoc
// @Summary Get current user's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/me [get]
func GetMyProfile(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		profile, err := storage.GetProfileByUserID(c.Request().Context(), userID)
		if errors.Is(err, utils.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch profile"})
		}

		return c.JSON(http.StatusOK, profile)
	}
}

// UpdateMyProfile godoc
// @Summary Upsert current user's profile
// @Description Update profile fields; the profile row is created on first update. Omitted fields keep their stored value.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body domain.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profiles/me [put]
func UpdateMyProfile(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		var req domain.ProfileUpdateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		profile, err := storage.UpsertProfile(c.Request().Context(), userID, &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
		}

		return c.JSON(http.StatusOK, profile)
	}
}
