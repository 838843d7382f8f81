package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateID parses a positive integer identifier from a path or header
// value. The second return is an error message, empty on success.
func ValidateID(raw, field string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, field + " is required"
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, field + " must be a positive integer"
	}
	return id, ""
}

// ValidateLimit parses an optional ?limit= query value, clamping it to
// [1, MaxLimit] and defaulting when absent.
func ValidateLimit(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit, ""
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "limit must be an integer"
	}
	if limit < 1 || limit > MaxLimit {
		return 0, "limit must be between 1 and 100"
	}
	return limit, ""
}
