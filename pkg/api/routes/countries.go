package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
)

func CountriesRouter(router fiber.Router, store *datastore.Store) {
	router.Get("/", func(c *fiber.Ctx) error {
		countries, err := store.ReadCountries()
		if err != nil {
			return readError(err, "Country list has not been downloaded")
		}

		return c.JSON(countries)
	})
}
