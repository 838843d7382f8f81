package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/ngys9919/manus-voting-ranking/internal/middleware"
	"github.com/ngys9919/manus-voting-ranking/internal/model"
	"github.com/ngys9919/manus-voting-ranking/internal/repository"
)

type NotificationHandler struct {
	repo *repository.NotificationRepo
}

func NewNotificationHandler(repo *repository.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// List handles GET /api/users/:userId/notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	limit, errMsg := middleware.ValidateLimit(c.Query("limit"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	notifications, err := h.repo.ListForUser(c.Context(), userID, limit)
	if err != nil {
		return degradedRead(c, "notifications", err, fiber.Map{"notifications": []model.Notification{}})
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

// UnreadCount handles GET /api/users/:userId/notifications/unread
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	count, err := h.repo.UnreadCount(c.Context(), userID)
	if err != nil {
		return degradedRead(c, "unread count", err, fiber.Map{"unread": 0})
	}
	return c.JSON(fiber.Map{"unread": count})
}

// MarkRead handles POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "id must be a positive integer")
	}

	updated, err := h.repo.MarkRead(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification read")
	}
	if !updated {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Notification not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// MarkAllRead handles POST /api/users/:userId/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	count, err := h.repo.MarkAllRead(c.Context(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notifications read")
	}
	return c.JSON(fiber.Map{"success": true, "updated": count})
}
