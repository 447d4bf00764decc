package requesthandler

import (
	"github.com/labstack/echo"
)

// RawResponse writes the response as JSON with the given status code
func RawResponse(c echo.Context, response interface{}, httpCode int) error {
	return c.JSON(httpCode, response)
}
