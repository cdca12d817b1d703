package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// contextUserID renders the authenticated caller's id for rate limit
// keys. Requests that never passed JWTAuth share the "anon" bucket.
func contextUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case int:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
