package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mirinda123/MetroDrifter/pkg/api/routes"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
)

func NewApp(store *datastore.Store) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/data")

	group.Get("version", routes.APIVersion)

	routes.CountriesRouter(group.Group("/countries"), store)
	routes.LinesRouter(group.Group("/lines"), store)
	routes.GeometryRouter(group.Group("/geometry"), store)

	return webApp
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		code = fiberError.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
