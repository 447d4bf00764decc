package requesthandler

import (
	"net/http"
	"os"

	"github.com/labstack/echo"
)

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Hostname string `json:"hostname"`
}

// HealthHandler serves the liveness check
type HealthHandler struct{}

func (handler HealthHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet:
		return handler.Get(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (HealthHandler) Get(c echo.Context) error {
	hostname, _ := os.Hostname()
	return RawResponse(c, HealthResponse{Status: "ok", Hostname: hostname}, http.StatusOK)
}
