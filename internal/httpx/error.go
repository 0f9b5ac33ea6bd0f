package httpx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts errors escaping a handler chain into the JSON error
// shape the API speaks: {"message": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}
