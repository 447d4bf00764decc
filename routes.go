package main

import (
	"bitbucket.org/yellowmessenger/chime-sma-responder/requesthandler"

	"github.com/labstack/echo"
)

// AddRoutes defines the routes and the handlers, one per call flow
func AddRoutes(e *echo.Echo, handlers FlowHandlers) {
	e.Any("/flows/forward-call", handlers.ForwardCall.Any)
	e.Any("/flows/lex-bot", handlers.LexBot.Any)
	e.Any("/flows/call-me-back", handlers.CallMeBack.Any)
	e.Any("/flows/play-recording", handlers.PlayRecording.Any)
	e.Any("/health", requesthandler.HealthHandler{}.Any)
}

// FlowHandlers carries the per-flow handlers wired at startup
type FlowHandlers struct {
	ForwardCall   requesthandler.ForwardCallHandler
	LexBot        requesthandler.LexBotHandler
	CallMeBack    requesthandler.CallMeBackHandler
	PlayRecording requesthandler.PlayRecordingHandler
}
