package context

import "github.com/labstack/echo/v4"

// SetUserID records the subject of a verified bearer token.
func SetUserID(c echo.Context, userID string) {
	c.Set(echoUserID, userID)
}

func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(echoUserID).(string)

	return userID, ok && userID != ""
}
