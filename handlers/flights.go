package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/errors"
	"travel-webapp/model"
)

func (h *Handler) GetFlights(c *fiber.Ctx) error {
	return c.JSON(h.Store.GetFlights())
}

func (h *Handler) GetFlight(c *fiber.Ctx) error {
	id, parseErr := strconv.Atoi(c.Params("id"))
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable flight id: %v", c.Params("id")))
	}

	flight, ok := h.Store.GetFlight(id)
	if !ok {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("flight %v not found", id))
	}

	return c.JSON(flight)
}

func (h *Handler) SearchFlights(c *fiber.Ctx) error {
	filters := new(model.FlightFilters)
	if jsonErr := c.BodyParser(filters); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable search filters: %v", jsonErr))
	}

	return c.JSON(h.Store.SearchFlights(*filters))
}
