package contracts

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo"
)

// Invocation event types sent by the SIP media application platform
const (
	EventNewInboundCall   = "NEW_INBOUND_CALL"
	EventNewOutboundCall  = "NEW_OUTBOUND_CALL"
	EventRinging          = "RINGING"
	EventCallAnswered     = "CALL_ANSWERED"
	EventActionSuccessful = "ACTION_SUCCESSFUL"
	EventDigitsReceived   = "DIGITS_RECEIVED"
	EventHangup           = "HANGUP"
)

// Call leg directions reported in the participant list
const (
	DirectionInbound  = "Inbound"
	DirectionOutbound = "Outbound"
)

// Participant is one leg of the call. The platform creates and destroys
// legs; the responder only ever reads them.
type Participant struct {
	CallID    string `json:"CallId"`
	To        string `json:"To"`
	From      string `json:"From"`
	Direction string `json:"Direction"`
}

// CallDetails carries the call state echoed back on every invocation
type CallDetails struct {
	SipMediaApplicationID string            `json:"SipMediaApplicationId"`
	Participants          []Participant     `json:"Participants"`
	TransactionAttributes map[string]string `json:"TransactionAttributes,omitempty"`
}

// Intent is the bot's classification of what the caller said
type Intent struct {
	Name string `json:"Name"`
}

// SessionState holds the bot session data echoed with an intent result
type SessionState struct {
	Intent Intent `json:"Intent"`
}

// IntentResult is populated on ACTION_SUCCESSFUL for StartBotConversation
type IntentResult struct {
	SessionState SessionState `json:"SessionState"`
}

// ActionData echoes the action whose outcome triggered this invocation
type ActionData struct {
	Type           string          `json:"Type"`
	Parameters     json.RawMessage `json:"Parameters,omitempty"`
	ReceivedDigits string          `json:"ReceivedDigits,omitempty"`
	IntentResult   *IntentResult   `json:"IntentResult,omitempty"`
}

// CallEvent is one lifecycle notification from the platform. All prior
// state the responder needs is contained in the echoed fields; nothing
// is retained between invocations.
type CallEvent struct {
	InvocationEventType string      `json:"InvocationEventType"`
	CallDetails         CallDetails `json:"CallDetails"`
	ActionData          *ActionData `json:"ActionData,omitempty"`
}

// ExtractFromHTTP decodes the event from the request body
func (ce *CallEvent) ExtractFromHTTP(c echo.Context) error {
	request := c.Request()
	err := json.NewDecoder(request.Body).Decode(ce)
	if err != nil {
		return err
	}
	return nil
}

// Validate checks the fields every well-formed event must carry. A failed
// validation is handled as an unknown event, not a protocol error.
func (ce *CallEvent) Validate() error {
	if len(ce.InvocationEventType) <= 0 {
		return errors.New("InvocationEventType is missing or empty")
	}
	if len(ce.CallDetails.Participants) <= 0 {
		return errors.New("event carries no participants")
	}
	if len(ce.CallDetails.Participants) > 2 {
		return errors.New("event carries more than two participants")
	}
	if len(ce.CallDetails.Participants[0].CallID) <= 0 {
		return errors.New("first participant has no call id")
	}
	return nil
}

// FindParticipantCallID returns the call id of the first leg matching the
// requested direction. The second return is false when no leg matches;
// callers must suppress leg-specific actions in that case rather than
// emit a placeholder id.
func (ce *CallEvent) FindParticipantCallID(direction string) (string, bool) {
	for _, participant := range ce.CallDetails.Participants {
		if participant.Direction == direction {
			return participant.CallID, true
		}
	}
	return "", false
}

// ReceivedDigits returns the accumulated digit buffer echoed with the
// event, or the empty string when no action data is present.
func (ce *CallEvent) ReceivedDigits() string {
	if ce.ActionData == nil {
		return ""
	}
	return ce.ActionData.ReceivedDigits
}

// IntentName returns the resolved intent name, or the empty string when
// the event carries no intent result.
func (ce *CallEvent) IntentName() string {
	if ce.ActionData == nil || ce.ActionData.IntentResult == nil {
		return ""
	}
	return ce.ActionData.IntentResult.SessionState.Intent.Name
}
