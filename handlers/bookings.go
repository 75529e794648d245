package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/errors"
	"travel-webapp/model"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	return c.JSON(h.Store.GetBookings())
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	id, parseErr := strconv.Atoi(c.Params("id"))
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking id: %v", c.Params("id")))
	}

	booking, ok := h.Store.GetBooking(id)
	if !ok {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", id))
	}

	return c.JSON(booking)
}

// CreateBooking validates the payload and appends a booking referencing a
// catalog item. The itemId is taken on faith, matching the original service:
// a booking may reference an id no catalog holds.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	newBooking := new(model.Booking)
	if jsonErr := c.BodyParser(newBooking); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", jsonErr))
	}
	newBooking.CustomerName = strings.TrimSpace(newBooking.CustomerName)

	if validationErrs := newBooking.Validate(); len(validationErrs) > 0 {
		return errors.RaiseSchemaError(c, "invalid booking data", validationErrs)
	}

	booking := h.Store.CreateBooking(*newBooking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}
