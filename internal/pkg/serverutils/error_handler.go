package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// NotFoundError marks errors that should surface as 404.
type NotFoundError interface {
	error
	NotFound() bool
}

// ErrorHandlerMiddleware turns handler errors into the standard envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := StatusFor(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

// StatusFor maps an error to an HTTP status and client message.
func StatusFor(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest, validationErr.Error()
	}

	var notFound NotFoundError
	if errors.As(err, &notFound) && notFound.NotFound() {
		return fiber.StatusNotFound, err.Error()
	}

	return fiber.StatusInternalServerError, err.Error()
}
