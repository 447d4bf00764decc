// Package forwardflow bridges an inbound caller to a number they dial
// in, then lets either side toggle noise suppression mid-bridge with a
// single digit.
package forwardflow

import (
	"context"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/phonenumber"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

const (
	// DialDigitsRegex matches a one followed by ten digits
	DialDigitsRegex = "^1[0-9]{10}"
	// ToggleDigitsRegex anchors on the end of the accumulated buffer;
	// the platform reports progressively accumulated digits
	ToggleDigitsRegex = "[0-1]$"

	dialPromptText   = "<speak>Hello!  Please enter the number you would like to call, starting with a one followed by ten digits</speak>"
	dialFailureText  = "<speak>Ooops, there was an error.</speak>"
	dialDigitsNeeded = 11
)

// Config holds the flow's fixed configuration
type Config struct {
	WavFileBucket   string
	RingbackToneKey string
}

// Evaluator derives the next action list for the forwarding flow. It
// holds no per-call state; everything is reconstructed from the event.
type Evaluator struct {
	conf Config
}

// NewEvaluator returns the flow evaluator
func NewEvaluator(conf Config) *Evaluator {
	return &Evaluator{conf: conf}
}

// HandleEvent returns the response for one call event
func (ev *Evaluator) HandleEvent(ctx context.Context, requestID string, event contracts.CallEvent) contracts.ResponseEnvelope {
	response := contracts.NewResponseEnvelope()
	switch event.InvocationEventType {
	case contracts.EventNewInboundCall:
		response.Actions = ev.newCall(requestID, event)
	case contracts.EventActionSuccessful:
		response.Actions = ev.actionSuccessful(requestID, event)
	case contracts.EventDigitsReceived:
		response.Actions = ev.digitsReceived(requestID, event)
	case contracts.EventHangup:
		ymlogger.LogInfof(requestID, "Call leg hung up. Participants: [%d]", len(event.CallDetails.Participants))
	default:
		ymlogger.LogInfof(requestID, "Ignoring event type [%s]", event.InvocationEventType)
	}
	return response
}

func (ev *Evaluator) newCall(requestID string, event contracts.CallEvent) []smaaction.Action {
	callID := event.CallDetails.Participants[0].CallID
	collect := smaaction.NewSpeakAndGetDigits(callID, dialPromptText, dialFailureText)
	collect.Parameters.InputDigitsRegex = DialDigitsRegex
	collect.Parameters.MinNumberOfDigits = dialDigitsNeeded
	collect.Parameters.MaxNumberOfDigits = dialDigitsNeeded
	return []smaaction.Action{
		smaaction.NewPause(),
		collect,
	}
}

func (ev *Evaluator) actionSuccessful(requestID string, event contracts.CallEvent) []smaaction.Action {
	if event.ActionData == nil {
		ymlogger.LogErrorf(requestID, "ACTION_SUCCESSFUL event carries no action data")
		return []smaaction.Action{}
	}
	switch event.ActionData.Type {
	case smaaction.TypeSpeakAndGetDigits:
		return ev.placeCall(requestID, event)
	case smaaction.TypeCallAndBridge:
		return ev.connectCall(requestID, event)
	case smaaction.TypeVoiceFocus:
		ymlogger.LogInfof(requestID, "Voice focus toggle applied")
	}
	return []smaaction.Action{}
}

// placeCall dials the number the caller entered and bridges it with
// the inbound leg
func (ev *Evaluator) placeCall(requestID string, event contracts.CallEvent) []smaaction.Action {
	digits := event.ReceivedDigits()
	if len(digits) <= 0 {
		ymlogger.LogErrorf(requestID, "SpeakAndGetDigits completed without digits")
		return []smaaction.Action{}
	}
	if pn, err := phonenumber.FromCollectedDigits(digits); err != nil || !pn.IsValid {
		ymlogger.LogErrorf(requestID, "Collected digits [%s] did not parse as a valid number. Error: [%#v]. Dialing anyway", digits, err)
	}
	bridge := smaaction.NewCallAndBridge(event.CallDetails.Participants[0].From, "+"+digits)
	if len(ev.conf.RingbackToneKey) > 0 {
		bridge = bridge.WithRingbackTone(smaaction.NewS3AudioSource(ev.conf.WavFileBucket, ev.conf.RingbackToneKey))
	}
	return []smaaction.Action{
		smaaction.NewPause(),
		bridge,
	}
}

// connectCall runs once both legs exist: voice focus starts disabled on
// each leg and the inbound leg is armed for single-digit toggles
func (ev *Evaluator) connectCall(requestID string, event contracts.CallEvent) []smaaction.Action {
	return ev.voiceFocusActions(requestID, event, false)
}

// digitsReceived flips voice focus on both legs: 0 disables, 1 enables.
// The echoed ActionData.Type is not inspected here; every digit event
// in the bridged state drives the toggle.
func (ev *Evaluator) digitsReceived(requestID string, event contracts.CallEvent) []smaaction.Action {
	switch event.ReceivedDigits() {
	case "0":
		return ev.voiceFocusActions(requestID, event, false)
	case "1":
		return ev.voiceFocusActions(requestID, event, true)
	}
	ymlogger.LogErrorf(requestID, "Unexpected toggle digits [%s], re-arming digit collection", event.ReceivedDigits())
	return ev.rearmOnly(requestID, event)
}

// voiceFocusActions emits the per-leg toggles plus a re-armed digit
// listener. Legs that cannot be resolved are skipped rather than
// addressed with a placeholder id.
func (ev *Evaluator) voiceFocusActions(requestID string, event contracts.CallEvent, enable bool) []smaaction.Action {
	actions := []smaaction.Action{}
	inboundID, inboundOk := event.FindParticipantCallID(contracts.DirectionInbound)
	if inboundOk {
		actions = append(actions, smaaction.NewVoiceFocus(inboundID, enable))
	} else {
		ymlogger.LogErrorf(requestID, "No inbound leg found, skipping its voice focus action")
	}
	outboundID, outboundOk := event.FindParticipantCallID(contracts.DirectionOutbound)
	if outboundOk {
		actions = append(actions, smaaction.NewVoiceFocus(outboundID, enable))
	} else {
		ymlogger.LogErrorf(requestID, "No outbound leg found, skipping its voice focus action")
	}
	if inboundOk {
		actions = append(actions, smaaction.NewReceiveDigits(inboundID, ToggleDigitsRegex))
	}
	return actions
}

func (ev *Evaluator) rearmOnly(requestID string, event contracts.CallEvent) []smaaction.Action {
	inboundID, ok := event.FindParticipantCallID(contracts.DirectionInbound)
	if !ok {
		ymlogger.LogErrorf(requestID, "No inbound leg found, nothing to re-arm")
		return []smaaction.Action{}
	}
	return []smaaction.Action{smaaction.NewReceiveDigits(inboundID, ToggleDigitsRegex)}
}
