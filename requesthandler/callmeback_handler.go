package requesthandler

import (
	"net/http"

	"github.com/labstack/echo"
)

// CallMeBackHandler serves the call-back-on-hangup flow
type CallMeBackHandler struct {
	Evaluator FlowEvaluator
}

func (handler CallMeBackHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Post(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (handler CallMeBackHandler) Post(c echo.Context) error {
	return handleFlowEvent(c, "call-me-back", handler.Evaluator)
}
