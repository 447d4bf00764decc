package requesthandler

import (
	"net/http"

	"github.com/labstack/echo"
)

// ForwardCallHandler serves the digit-collect-and-bridge flow
type ForwardCallHandler struct {
	Evaluator FlowEvaluator
}

func (handler ForwardCallHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Post(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (handler ForwardCallHandler) Post(c echo.Context) error {
	return handleFlowEvent(c, "forward-call", handler.Evaluator)
}
