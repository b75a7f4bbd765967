package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON envelope
   {error: bool, data?, message?}
=================================*/

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func jsonSuccess(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"error": false}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// JsonList wraps a collection under its plural name plus pagination.
// note is set on degraded reads that serve placeholder data.
func JsonList(c *fiber.Ctx, plural string, items interface{}, pagination *Pagination, note string) error {
	data := fiber.Map{plural: items}
	if pagination != nil {
		data["pagination"] = pagination
	}
	if note != "" {
		data["note"] = note
	}
	return jsonSuccess(c, fiber.StatusOK, "", data)
}

// FromError translates a service error (usually *fiber.Error) into the
// envelope. Anything else is an unexpected failure.
func FromError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// JsonValidationError flattens validator.v10 field errors into one message map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": "Validation failed",
		"fields":  fields,
	})
}
