package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"travel-webapp/errors"
)

// Me echoes the claims of the verified token set by the Authorize middleware.
func (h *Handler) Me(c *fiber.Ctx) error {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return errors.RaiseUnauthorizedError(c, "no token in request context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.RaiseUnauthorizedError(c, "unreadable token claims")
	}

	return c.JSON(fiber.Map{
		"id":        claims["sub"],
		"email":     claims["email"],
		"firstName": claims["firstName"],
		"lastName":  claims["lastName"],
	})
}
