package handler

import (
	"errors"
	"strconv"

	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// writeError maps service errors onto the API's error envelopes:
// validation → 400 {message, field}, not found → 404 {message},
// illegal transition → 409 {message}, everything else → 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(verr)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"message": err.Error()})
	}
	if errors.Is(err, service.ErrInvalidTransition) || errors.Is(err, service.ErrInvalidPicklistTransition) {
		return c.Status(409).JSON(fiber.Map{"message": err.Error()})
	}
	switch err {
	case service.ErrSkuCodeExists:
		return c.Status(400).JSON(validator.ValidationError{Message: err.Error(), Field: "code"})
	case service.ErrUsernameExists:
		return c.Status(400).JSON(validator.ValidationError{Message: err.Error(), Field: "username"})
	case service.ErrNothingToAdvance:
		return c.Status(409).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"message": "Internal Server Error"})
}
