package routes

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func LinesRouter(router fiber.Router, store *datastore.Store) {
	router.Get("/:country", func(c *fiber.Ctx) error {
		lines, err := readCountryLines(c, store)
		if err != nil {
			return err
		}

		return c.JSON(lines)
	})

	router.Get("/:country/cities", func(c *fiber.Ctx) error {
		lines, err := readCountryLines(c, store)
		if err != nil {
			return err
		}

		return c.JSON(Cities(lines))
	})
}

func readCountryLines(c *fiber.Ctx, store *datastore.Store) ([]metro.Line, error) {
	country, err := url.PathUnescape(c.Params("country"))
	if err != nil || !validCountry(country) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid country")
	}

	// Accepts both the display name and the file key
	key := metro.CountryToKey(metro.KeyToCountry(country))

	lines, err := store.ReadLines(key)
	if err != nil {
		return nil, readError(err, "Could not find lines for country "+country)
	}
	if lines == nil {
		lines = []metro.Line{}
	}

	return lines, nil
}

func validCountry(country string) bool {
	return strings.TrimSpace(country) != "" &&
		!strings.ContainsAny(country, `/\`) &&
		!strings.HasPrefix(country, ".")
}

// Cities lists the distinct non-blank cities of the lines, ordered ignoring case and accents
func Cities(lines []metro.Line) []string {
	seen := map[string]bool{}
	cities := []string{}

	for _, line := range lines {
		city := strings.TrimSpace(line.City)
		if city == "" || seen[city] {
			continue
		}

		seen[city] = true
		cities = append(cities, city)
	}

	collate.New(language.Und, collate.Loose).SortStrings(cities)

	return cities
}
