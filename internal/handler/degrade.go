package handler

import (
	"log"

	"github.com/gofiber/fiber/v3"
)

// degradedRead logs a failed read and serves the given fallback payload so
// browse endpoints stay available while a dependency is down. Writes on the
// vote pipeline still surface their errors to the client.
func degradedRead(c fiber.Ctx, endpoint string, err error, fallback any) error {
	log.Printf("%s: serving degraded read: %v", endpoint, err)
	return c.JSON(fallback)
}
