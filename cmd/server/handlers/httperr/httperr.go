package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// E represents an HTTP error. It renders as the same {status, message} envelope
// successful responses use, with itemized errors when there are any.
type E struct {
	Status  int    `json:"status" example:"400"`
	Message string `json:"message" example:"Bad Request"`
	Errors  any    `json:"errors,omitempty" swaggertype:"array,object"`
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON returns the error as JSON response
func (e E) JSON(c *fiber.Ctx) error {
	return c.Status(e.Status).JSON(e)
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// Validation returns the 400 response carrying every failed rule.
func Validation(errs any) error {
	return Fail(E{
		Status:  fiber.StatusBadRequest,
		Message: "Validation error",
		Errors:  errs,
	})
}

// BadRequest returns a 400 with the given message.
func BadRequest(message string) error {
	return Fail(E{Status: fiber.StatusBadRequest, Message: message})
}

// NotFound returns a 404 with the given message.
func NotFound(message string) error {
	return Fail(E{Status: fiber.StatusNotFound, Message: message})
}

// InternalError returns an internal server error with the given message
func InternalError(message string) E {
	return E{Status: fiber.StatusInternalServerError, Message: message}
}

// Pre-defined HTTP errors
var (
	ErrBadRequest      = E{Status: 400, Message: "Bad Request"}
	ErrKeyMissing      = E{Status: 401, Message: "Authentication key missing"}
	ErrKeyInvalid      = E{Status: 401, Message: "Authentication key invalid"}
	ErrForbidden       = E{Status: 403, Message: "Access forbidden"}
	ErrNotFound        = E{Status: 404, Message: "No matching entries found"}
	ErrConflict        = E{Status: 409, Message: "Email address is already in use"}
	ErrTooManyRequests = E{Status: 429, Message: "Too Many Requests"}
	ErrInternal        = InternalError("Internal Server Error")
)

// Handler is the global error handler for Fiber
func Handler(c *fiber.Ctx, err error) error {
	var e E
	if errors.As(err, &e) {
		return e.JSON(c)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(E{
			Status:  fiberError.Code,
			Message: fiberError.Message,
		})
	}

	return ErrInternal.JSON(c)
}
