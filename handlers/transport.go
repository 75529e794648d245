package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/errors"
	"travel-webapp/model"
)

func (h *Handler) GetTransport(c *fiber.Ctx) error {
	return c.JSON(h.Store.GetTransport())
}

func (h *Handler) GetTransportById(c *fiber.Ctx) error {
	id, parseErr := strconv.Atoi(c.Params("id"))
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable transport id: %v", c.Params("id")))
	}

	item, ok := h.Store.GetTransportById(id)
	if !ok {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("transport %v not found", id))
	}

	return c.JSON(item)
}

func (h *Handler) SearchTransport(c *fiber.Ctx) error {
	filters := new(model.TransportFilters)
	if jsonErr := c.BodyParser(filters); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable search filters: %v", jsonErr))
	}

	return c.JSON(h.Store.SearchTransport(*filters))
}
