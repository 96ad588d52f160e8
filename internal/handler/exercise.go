package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"provalab/internal/domain"
	"provalab/internal/repository/postgres"
	"provalab/internal/utils"
)

const defaultListLimit = 50

func SetupExerciseRoutes(e *echo.Echo, storage *postgres.Storage, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/exercises", authMiddleware)

	g.GET("", ListExercises(storage))
	g.GET("/random", GetRandomExercise(storage))
	g.GET("/:id", GetExerciseByID(storage))
	g.POST("", CreateExercise(storage))
}

// parseLimit reads the limit query param, falling back to the default on
// absence and rejecting garbage.
func parseLimit(c echo.Context, fallback int) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errors.New("invalid limit")
	}

	return limit, nil
}

// ListExercises godoc
// @Summary List exercises
// @Description List exercises, optionally filtered by subject and difficulty
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Subject filter"
// @Param difficulty query string false "Difficulty filter"
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} domain.Exercise
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /exercises [get]
func ListExercises(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		subject := c.QueryParam("subject")
		difficulty := c.QueryParam("difficulty")

		if subject != "" && !domain.ValidSubject(subject) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid subject"})
		}
		if difficulty != "" && !domain.ValidDifficulty(difficulty) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid difficulty"})
		}

		limit, err := parseLimit(c, defaultListLimit)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		exercises, err := storage.ListExercises(c.Request().Context(), subject, difficulty, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch exercises"})
		}

		return c.JSON(http.StatusOK, exercises)
	}
}

// GetRandomExercise godoc
// @Summary Get a random exercise
// @Description One random exercise matching the given subject and difficulty
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param subject query string true "Subject"
// @Param difficulty query string true "Difficulty"
// @Success 200 {object} domain.Exercise
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exercises/random [get]
func GetRandomExercise(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		subject := c.QueryParam("subject")
		difficulty := c.QueryParam("difficulty")

		if !domain.ValidSubject(subject) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid subject"})
		}
		if !domain.ValidDifficulty(difficulty) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid difficulty"})
		}

		exercise, err := storage.GetRandomExercise(c.Request().Context(), subject, difficulty)
		if errors.Is(err, utils.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("no exercise found for %s (%s)", subject, difficulty),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch exercise"})
		}

		return c.JSON(http.StatusOK, exercise)
	}
}

// GetExerciseByID godoc
// @Summary Get exercise by ID
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /exercises/{id} [get]
func GetExerciseByID(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid exercise id"})
		}

		exercise, err := storage.GetExerciseByID(c.Request().Context(), id)
		if errors.Is(err, utils.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "exercise not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch exercise"})
		}

		return c.JSON(http.StatusOK, exercise)
	}
}

// CreateExercise godoc
// @Summary Create exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body domain.CreateExerciseRequest true "Exercise details"
// @Success 201 {object} domain.Exercise
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /exercises [post]
func CreateExercise(storage *postgres.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.CreateExerciseRequest

		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		exercise, err := storage.CreateExercise(c.Request().Context(), &req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create exercise"})
		}

		return c.JSON(http.StatusCreated, exercise)
	}
}
