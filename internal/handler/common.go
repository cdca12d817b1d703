// Package handler implements the HTTP surface of the inventory API. The
// handlers validate request shape, delegate to the record store and map
// store errors to HTTP statuses. User-facing messages are in Japanese
// for the operators this dashboard serves; internal detail never leaks
// into a response body.
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ValidationDetail is one field-level validation failure.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorBody is the error contract shared by every endpoint:
// { message: string, errors?: ValidationDetail[] }.
type errorBody struct {
	Message string             `json:"message"`
	Errors  []ValidationDetail `json:"errors,omitempty"`
}

func errJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, errorBody{Message: message})
}

func validationJSON(c echo.Context, details []ValidationDetail) error {
	return c.JSON(400, errorBody{Message: "入力データが不正です", Errors: details})
}

// pathID parses the :id path parameter. Anything that is not a positive
// integer is rejected.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// getUserID extracts the authenticated caller's id stored in the context
// by the JWT middleware. JWT claims decode numbers as float64.
func getUserID(c echo.Context) (int, error) {
	switch t := c.Get("user_id").(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
