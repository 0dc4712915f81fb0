package middleware

import (
	"strings"

	deliverycontext "account/internal/delivery/context"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
	"account/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token and records the
// token subject for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrInvalidToken, "authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return errors.Wrap(domainerrors.ErrInvalidToken, "authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
		}

		deliverycontext.SetUserID(c, claims.UserID())

		return next(c)
	}
}

// GetUserID returns the subject of the verified token, if any.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
