package main

import (
	"context"
	"net/http"

	"provalab/internal/auth"
	"provalab/internal/config"
	"provalab/internal/handler"
	"provalab/internal/middleware"
	"provalab/internal/repository/postgres"

	_ "provalab/docs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// @title ProvaLab API
// @version 1.0
// @description Backend for the ProvaLab educational exercise platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes https http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	godotenv.Load()
	e := echo.New()

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	cfg, err := config.Load()
	if err != nil {
		e.Logger.Fatal(err)
	}

	if cfg.SecretTooShort() {
		e.Logger.Warnf("JWT secret is shorter than %d characters; do not use it in production", config.MinSecretLength)
	}

	storage, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		e.Logger.Fatal(err)
	}
	defer storage.Close()

	if err := storage.Migrate(context.Background()); err != nil {
		e.Logger.Fatal(err)
	}
	if err := storage.SeedExercises(context.Background()); err != nil {
		e.Logger.Fatal(err)
	}

	tokens, err := auth.NewTokenService(cfg)
	if err != nil {
		e.Logger.Fatal(err)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	handler.SetupSystemRoutes(e)

	authMiddleware := middleware.JWTAuth(tokens)
	handler.SetupAuthRoutes(e, storage, tokens, authMiddleware)
	handler.SetupProfileRoutes(e, storage, authMiddleware)
	handler.SetupExerciseRoutes(e, storage, authMiddleware)
	handler.SetupAttemptRoutes(e, storage, authMiddleware)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
