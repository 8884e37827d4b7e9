package middlewares

import (
	"crypto/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/oklog/ulid/v2"
)

// RequestIDHeader is echoed on every response and logged by the request logger.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a ULID unless the client already sent one.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: newRequestID,
	})
}

func newRequestID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String()
}
