package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travel-webapp/storage"
)

// Handler carries the storage handle into the HTTP layer. The store is
// constructed once at startup and shared by every route.
type Handler struct {
	Store *storage.MemStorage
}

func New(store *storage.MemStorage) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
