package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/paulmach/orb"
)

func GeometryRouter(router fiber.Router, store *datastore.Store) {
	router.Get("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Relation id must be an integer")
		}

		geometry, err := store.ReadGeometry(id)
		if err != nil {
			return readError(err, "Could not find geometry for relation "+strconv.FormatInt(id, 10))
		}

		if c.Query("scale") == "" && c.Query("lng") == "" && c.Query("lat") == "" {
			return c.JSON(geometry)
		}

		scale, scaleErr := strconv.ParseFloat(c.Query("scale"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		if scaleErr != nil || lngErr != nil || latErr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "scale, lng and lat must all be numbers")
		}

		return c.JSON(geometry.ScaleAndTranslate(scale, orb.Point{lng, lat}))
	})
}
