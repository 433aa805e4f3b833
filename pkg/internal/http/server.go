package http

import (
	"errors"

	"github.com/evelanca/backstage/pkg/internal/http/admin"
	"github.com/evelanca/backstage/pkg/internal/http/api"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Backstage",
		AppName:               "Backstage",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
		ErrorHandler:          errorHandler,
	})

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	return &App{app}
}

// errorHandler maps the domain error taxonomy onto statuses; validation,
// conflict and referenced failures mean nothing was mutated, transient
// failures mean the store is down and the caller should retry by hand.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var validationErr *models.ValidationError
	var conflictErr *models.ConflictError
	var referencedErr *models.ReferencedError
	var notFoundErr *models.NotFoundError
	var transientErr *models.TransientStoreError

	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		status = fiber.StatusConflict
	case errors.As(err, &referencedErr):
		status = fiber.StatusConflict
	case errors.As(err, &transientErr):
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting HTTP server.")
	}
}
