package routes

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"
)

// readError turns a failed file read into a 404 when the file is missing, a 500 otherwise
func readError(err error, notFoundMessage string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fiber.NewError(fiber.StatusNotFound, notFoundMessage)
	}

	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
