package middlewares

import (
	"context"
	"errors"
	"slices"

	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/cmd/server/handlers/httperr"
	"weather-api/internal/logger"
	"weather-api/internal/services/users"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Authenticator resolves authentication keys and records caller activity.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*users.User, error)
	RecordActivity(id bson.ObjectID)
}

// Rejection reasons reported to AuthConfig.OnReject.
const (
	RejectMissing   = "missing"
	RejectInvalid   = "invalid"
	RejectForbidden = "forbidden"
)

// AuthConfig configures the authentication gate.
type AuthConfig struct {
	// Header carries the authentication key.
	Header string
	// OnReject, when set, is called with the rejection reason.
	OnReject func(reason string)
}

// Auth returns a handler that lets a request through only when its key belongs to a
// user whose role is one of allowed:
//
//   - no key                      -> 401 "Authentication key missing"
//   - unknown key or lookup error -> 401 "Authentication key invalid"
//   - role not allowed            -> 403 "Access forbidden"
//
// On success the user is stored under handlerutil.UserKey and a lastQueryTime write
// is started without waiting for it.
func Auth(authn Authenticator, cfg AuthConfig, allowed ...users.Role) fiber.Handler {
	reject := func(reason string, e httperr.E) error {
		if cfg.OnReject != nil {
			cfg.OnReject(reason)
		}
		return httperr.Fail(e)
	}

	return func(c *fiber.Ctx) error {
		key := c.Get(cfg.Header)
		if key == "" {
			return reject(RejectMissing, httperr.ErrKeyMissing)
		}

		user, err := authn.Authenticate(c.UserContext(), key)
		if err != nil {
			if !errors.Is(err, users.ErrUserNotFound) {
				logger.L().Error("authentication lookup failed", "handler", "auth", "path", c.Path(), "error", err)
			}
			return reject(RejectInvalid, httperr.ErrKeyInvalid)
		}

		if !slices.Contains(allowed, user.Role) {
			logger.L().Info("role not allowed", "handler", "auth", "path", c.Path(), "userID", user.ID.Hex(), "role", user.Role)
			return reject(RejectForbidden, httperr.ErrForbidden)
		}

		authn.RecordActivity(user.ID)
		c.Locals(handlerutil.UserKey, user)
		return c.Next()
	}
}
