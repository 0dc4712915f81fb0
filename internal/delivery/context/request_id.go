// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from requests and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

// ctxKey keeps values stored here out of reach of other packages' keys.
type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context keys
const (
	echoRequestID = "request_id"
	echoUserID    = "user_id"
)

// GetRequestID returns the ID stored by the request ID middleware. Outside a
// request pipeline it falls back to a fresh UUID so error envelopes always
// carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx did not pass through the middleware.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}
