package controllers

import (
	"errors"

	"halaqa_go/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// storeError maps store errors onto HTTP responses: validation failures
// to 400, unknown students to 404, anything else to 500.
func storeError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	}
	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
