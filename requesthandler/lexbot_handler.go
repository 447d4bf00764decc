package requesthandler

import (
	"net/http"

	"github.com/labstack/echo"
)

// LexBotHandler serves the conversational bot flow
type LexBotHandler struct {
	Evaluator FlowEvaluator
}

func (handler LexBotHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Post(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (handler LexBotHandler) Post(c echo.Context) error {
	return handleFlowEvent(c, "lex-bot", handler.Evaluator)
}
