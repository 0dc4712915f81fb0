// Package middleware holds transport-agnostic echo middleware shared by the HTTP deliveries.
package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "account/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client supplied IDs end up in logs and response headers.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestIDMiddleware tags every request with an ID and hangs a child logger
// carrying that ID off the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithLogger(
			deliverycontext.WithRequestID(c.Request().Context(), requestID),
			scoped,
		)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID keeps a well-formed client ID and mints a UUID otherwise.
func resolveRequestID(incoming string) string {
	if validRequestID.MatchString(incoming) {
		return incoming
	}

	return uuid.NewString()
}
