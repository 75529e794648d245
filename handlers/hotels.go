package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/errors"
	"travel-webapp/model"
)

func (h *Handler) GetHotels(c *fiber.Ctx) error {
	return c.JSON(h.Store.GetHotels())
}

func (h *Handler) GetFeaturedHotels(c *fiber.Ctx) error {
	return c.JSON(h.Store.GetFeaturedHotels())
}

func (h *Handler) GetHotel(c *fiber.Ctx) error {
	id, parseErr := strconv.Atoi(c.Params("id"))
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable hotel id: %v", c.Params("id")))
	}

	hotel, ok := h.Store.GetHotel(id)
	if !ok {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("hotel %v not found", id))
	}

	return c.JSON(hotel)
}

func (h *Handler) SearchHotels(c *fiber.Ctx) error {
	filters := new(model.HotelFilters)
	if jsonErr := c.BodyParser(filters); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable search filters: %v", jsonErr))
	}

	return c.JSON(h.Store.SearchHotels(*filters))
}
