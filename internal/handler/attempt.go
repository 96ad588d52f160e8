package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"provalab/internal/domain"
	"provalab/internal/repository/postgres"
	"provalab/internal/utils"
)

// progressWindow caps the attempts (and their embedded stats) returned by
// the progress endpoint. Full-history stats live on /attempts/stats; the
// two may legitimately disagree past this window.
const progressWindow = 100

func SetupAttemptRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/attempts", authMiddleware)

	g.GET("", ListMyAttempts(storage))
	g.GET("/stats", GetMyStats(storage))
	g.GET("/progress", GetMyProgress(storage))
	g.POST("", CreateAttempt(storage))
}

// ListMyAttempts godoc
// @Summary List attempts
// @Description Most recent attempts of the authenticated user, exercise included
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} domain.Attempt
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /attempts [get]
func ListMyAttempts(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		limit, err := parseLimit(c, defaultListLimit)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		attempts, err := storage.ListAttemptsForUser(c.Request().Context(), userID, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch attempts"})
		}

		return c.JSON(http.StatusOK, attempts)
	}
}

// GetMyStats godoc
// @Summary Get full-history stats
// @Description Attempt counts and accuracy over the user's entire history
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Stats
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /attempts/stats [get]
func GetMyStats(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		stats, err := storage.GetAttemptStats(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch stats"})
		}

		return c.JSON(http.StatusOK, stats)
	}
}

// GetMyProgress godoc
// @Summary Get recent progress
// @Description Latest 100 attempts with stats computed over that same window
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ProgressResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /attempts/progress [get]
func GetMyProgress(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		attempts, err := storage.ListAttemptsForUser(c.Request().Context(), userID, progressWindow)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch attempts"})
		}

		return c.JSON(http.StatusOK, domain.ProgressResponse{
			Attempts: attempts,
			Stats:    domain.ComputeStats(attempts),
		})
	}
}

// CreateAttempt godoc
// @Summary Record attempt
// @Description Append an attempt for the authenticated user. Correctness is caller-supplied and not recomputed.
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body domain.CreateAttemptRequest true "Attempt details"
// @Success 201 {object} domain.Attempt
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /attempts [post]
func CreateAttempt(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		var req domain.CreateAttemptRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		attempt, err := storage.CreateAttempt(c.Request().Context(), userID, &req)
		if errors.Is(err, utils.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "exercise not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to record attempt"})
		}

		return c.JSON(http.StatusCreated, attempt)
	}
}
