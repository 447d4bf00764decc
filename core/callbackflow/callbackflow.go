// Package callbackflow greets an inbound caller, hangs up, and places a
// fresh outbound call back to them. The callback is best effort: a
// failed placement is logged, never retried past the dialer's budget,
// and never surfaced to the platform.
package callbackflow

import (
	"context"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

const (
	greetingText = "<speak>Hello!  I will call you back!  Goodbye!</speak>"
	callbackText = "<speak>Hello!  I am just calling you back!  Goodbye!</speak>"
)

// Dialer places an outbound call through the platform, asynchronously
type Dialer interface {
	PlaceCall(ctx context.Context, requestID string, fromNumber string, toNumber string, sipMediaApplicationID string)
}

// Evaluator derives the next action list for the call-back flow
type Evaluator struct {
	dialer Dialer
}

// NewEvaluator returns the flow evaluator
func NewEvaluator(dialer Dialer) *Evaluator {
	return &Evaluator{dialer: dialer}
}

// HandleEvent returns the response for one call event
func (ev *Evaluator) HandleEvent(ctx context.Context, requestID string, event contracts.CallEvent) contracts.ResponseEnvelope {
	response := contracts.NewResponseEnvelope()
	switch event.InvocationEventType {
	case contracts.EventNewInboundCall:
		response.Actions = []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewSpeak(greetingText),
			smaaction.NewHangup(),
		}
	case contracts.EventActionSuccessful:
		if event.CallDetails.Participants[0].Direction == contracts.DirectionInbound {
			response.Actions = []smaaction.Action{smaaction.NewHangup()}
		}
	case contracts.EventHangup:
		ev.hangup(ctx, requestID, event)
	case contracts.EventCallAnswered:
		response.Actions = []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewSpeak(callbackText),
			smaaction.NewPause(),
			smaaction.NewHangup(),
		}
	case contracts.EventNewOutboundCall:
		ymlogger.LogInfof(requestID, "Callback leg created")
	case contracts.EventRinging:
		ymlogger.LogInfof(requestID, "Callback leg ringing")
	default:
		ymlogger.LogInfof(requestID, "Ignoring event type [%s]", event.InvocationEventType)
	}
	return response
}

// hangup on the inbound leg triggers the callback placement. The
// response to the hangup itself carries no actions; the new call is a
// platform-facing call placement request, not an action.
func (ev *Evaluator) hangup(ctx context.Context, requestID string, event contracts.CallEvent) {
	participant := event.CallDetails.Participants[0]
	if participant.Direction != contracts.DirectionInbound {
		ymlogger.LogInfof(requestID, "Callback leg hung up, task completed")
		return
	}
	if ev.dialer == nil {
		ymlogger.LogErrorf(requestID, "No dialer configured, skipping the callback placement")
		return
	}
	ymlogger.LogInfof(requestID, "Inbound leg hung up, placing the callback. From: [%s] To: [%s]", participant.To, participant.From)
	ev.dialer.PlaceCall(ctx, requestID, participant.To, participant.From, event.CallDetails.SipMediaApplicationID)
}
