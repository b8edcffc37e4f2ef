package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/dto"
	"smartpet-backend/internal/services"
	"smartpet-backend/internal/storage"
)

// StatusFor maps service errors to HTTP status codes. 0 means unmapped.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, storage.ErrInvalidKey):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	}
	return 0
}

// writeError renders known errors; anything else goes to the app's error handler.
func writeError(c *fiber.Ctx, err error) error {
	if code := StatusFor(err); code != 0 {
		msg := err.Error()
		if code == fiber.StatusGatewayTimeout {
			msg = "request timed out"
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
	return err
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), timeout)
}

func objectIDParam(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(c.Params(name))
}
