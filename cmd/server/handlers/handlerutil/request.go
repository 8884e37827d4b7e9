package handlerutil

import (
	"errors"
	"fmt"

	"weather-api/cmd/server/handlers/httperr"
	"weather-api/internal/logger"
	"weather-api/internal/services/users"
	"weather-api/internal/utils/validate"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserKey is the c.Locals key holding the authenticated *users.User.
const UserKey = "user"

// CurrentUser returns the user the auth gate stored on the context.
func CurrentUser(c *fiber.Ctx) (*users.User, bool) {
	u, ok := c.Locals(UserKey).(*users.User)
	return u, ok && u != nil
}

func callerID(c *fiber.Ctx) string {
	if u, ok := CurrentUser(c); ok {
		return u.ID.Hex()
	}
	return ""
}

// Envelope is the status/message pair every JSON response starts with. Response
// types embed it and add their payload keys.
type Envelope struct {
	Status  int    `json:"status" example:"200"`
	Message string `json:"message" example:"OK"`
}

// OK returns a 200 envelope.
func OK(message string) Envelope {
	return Envelope{Status: fiber.StatusOK, Message: message}
}

// ParseBody parses the request body into req
func ParseBody(c *fiber.Ctx, req any, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "userID", callerID(c), "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}
	return nil
}

// ParseAndValidateBody parses request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, v *validator.Validate, handlerName string) error {
	if err := ParseBody(c, req, handlerName); err != nil {
		return err
	}
	return ValidateStruct(c, req, v, handlerName)
}

// ParseAndValidateQuery parses query parameters and validates them
func ParseAndValidateQuery(c *fiber.Ctx, req any, v *validator.Validate, handlerName string) error {
	if err := c.QueryParser(req); err != nil {
		logger.L().Warn("failed to parse query params", "handler", handlerName, "userID", callerID(c), "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}
	return ValidateStruct(c, req, v, handlerName)
}

// ParseAndValidateParams parses route parameters and validates them
func ParseAndValidateParams(c *fiber.Ctx, req any, v *validator.Validate, handlerName string) error {
	if err := c.ParamsParser(req); err != nil {
		logger.L().Warn("failed to parse route params", "handler", handlerName, "userID", callerID(c), "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}
	return ValidateStruct(c, req, v, handlerName)
}

// ValidateEach validates every element of a batch. Field names of the reported
// violations are prefixed with the element index, e.g. "[2].temperature".
func ValidateEach[T any](c *fiber.Ctx, items []T, v *validator.Validate, handlerName string) error {
	var all []validate.Violation
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			for _, vi := range validate.Violations(err) {
				vi.Field = fmt.Sprintf("[%d].%s", i, vi.Field)
				all = append(all, vi)
			}
		}
	}
	if len(all) > 0 {
		logger.L().Info("batch validation failed", "handler", handlerName, "userID", callerID(c), "violations", len(all))
		return httperr.Validation(all)
	}
	return nil
}

// ValidateVar validates a single value, such as a JSON array body, against tag.
func ValidateVar(c *fiber.Ctx, value any, tag string, v *validator.Validate, handlerName string) error {
	if err := v.Var(value, tag); err != nil {
		logger.L().Info("request validation failed", "handler", handlerName, "userID", callerID(c), "error", err)
		return httperr.Validation(validate.Violations(err))
	}
	return nil
}

// ValidateStruct validates an already parsed request
func ValidateStruct(c *fiber.Ctx, req any, v *validator.Validate, handlerName string) error {
	if err := v.Struct(req); err != nil {
		logger.L().Info("request validation failed", "handler", handlerName, "userID", callerID(c), "error", err)
		return httperr.Validation(validate.Violations(err))
	}
	return nil
}

// HandleServiceError maps notFoundErr to a 404 carrying notFoundMessage and anything
// else to a generic 500.
func HandleServiceError(c *fiber.Ctx, err error, handlerName string, notFoundErr error, notFoundMessage string) error {
	logFields := []any{"handler", handlerName, "userID", callerID(c), "error", err}

	if errors.Is(err, notFoundErr) {
		logger.L().Info("resource not found", logFields...)
		return httperr.NotFound(notFoundMessage)
	}

	logger.L().Error("service operation failed", logFields...)
	return httperr.Fail(httperr.ErrInternal)
}
