package errors

import (
	"github.com/gofiber/fiber/v2"

	"travel-webapp/model"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

func RaiseUnauthorizedError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "unauthorized", data)
}

// RaiseSchemaError reports a structurally invalid payload with one entry per
// offending field.
func RaiseSchemaError(context *fiber.Ctx, message string, errs []model.FieldError) error {
	return context.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"errors":  errs})
}
