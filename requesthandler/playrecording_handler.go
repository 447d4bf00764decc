package requesthandler

import (
	"net/http"

	"github.com/labstack/echo"
)

// PlayRecordingHandler serves the audio playback flow
type PlayRecordingHandler struct {
	Evaluator FlowEvaluator
}

func (handler PlayRecordingHandler) Any(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
		return handler.Post(c)
	}
	return RawResponse(c, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (handler PlayRecordingHandler) Post(c echo.Context) error {
	return handleFlowEvent(c, "play-recording", handler.Evaluator)
}
