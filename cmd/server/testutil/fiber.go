package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/cmd/server/handlers/httperr"
	"weather-api/internal/config"
	"weather-api/internal/logger"
	"weather-api/internal/services/users"
	"weather-api/internal/utils/validate"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuthHeader is the key header used by handler tests.
const AuthHeader = "authenticationKey"

// CreateTestApp creates a basic Fiber app for testing with common configuration
func CreateTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{LogLevel: "debug", LogFormat: "text"}
	_, err := logger.Init(cfg)
	require.NoError(t, err)

	return fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
	})
}

// CreateTestValidator creates a validator with the project rules registered
func CreateTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v, err := validate.New()
	require.NoError(t, err)
	return v
}

// AsUser stands in for the auth gate: it stores a user of the given role on the context.
func AsUser(role users.Role) fiber.Handler {
	u := &users.User{ID: bson.NewObjectID(), Email: string(role) + "@example.com", Role: role}
	return func(c *fiber.Ctx) error {
		c.Locals(handlerutil.UserKey, u)
		return c.Next()
	}
}

// CreateJSONRequest creates an HTTP request with JSON body. A string or []byte body
// is sent verbatim.
func CreateJSONRequest(method, url string, body any) *http.Request {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	case []byte:
		reqBody = b
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// CreateAuthenticatedRequest creates an HTTP request carrying an authentication key
func CreateAuthenticatedRequest(method, url string, body any, key string) *http.Request {
	req := CreateJSONRequest(method, url, body)
	req.Header.Set(AuthHeader, key)
	return req
}

// Do runs the request and decodes the JSON envelope.
func Do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}
