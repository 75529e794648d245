package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"travel-webapp/errors"
)

// ContactSupport accepts a contact-form submission and acknowledges it with
// a ticket reference. Messages are logged only, nothing is stored.
func (h *Handler) ContactSupport(c *fiber.Ctx) error {
	type ContactInput struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	input := new(ContactInput)
	if jsonErr := c.BodyParser(input); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable contact parameters: %v", jsonErr))
	}

	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return errors.RaiseBadRequestError(c, "missing required fields")
	}

	ticket := uuid.NewString()
	log.Printf("support message received: ticket=%v from=%v <%v> subject=%v",
		ticket, input.Name, input.Email, input.Subject)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
		"ticket":  ticket,
	})
}
