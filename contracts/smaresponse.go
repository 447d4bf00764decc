package contracts

import (
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
)

// ResponseSchemaVersion is the only schema version the platform accepts
const ResponseSchemaVersion = "1.0"

// ResponseEnvelope is the value returned per invocation. Actions are
// executed front-to-back by the platform; TransactionAttributes are
// persisted by the platform and echoed back on subsequent events for
// the same call.
type ResponseEnvelope struct {
	SchemaVersion         string             `json:"SchemaVersion"`
	Actions               []smaaction.Action `json:"Actions"`
	TransactionAttributes map[string]string  `json:"TransactionAttributes,omitempty"`
}

// NewResponseEnvelope returns an envelope with no actions. A fresh value
// is built per invocation; envelopes are never shared across requests.
func NewResponseEnvelope() ResponseEnvelope {
	return ResponseEnvelope{
		SchemaVersion: ResponseSchemaVersion,
		Actions:       []smaaction.Action{},
	}
}

// WithActions returns the envelope carrying the given action sequence
func (re ResponseEnvelope) WithActions(actions ...smaaction.Action) ResponseEnvelope {
	re.Actions = actions
	return re
}

// ActionTypes lists the action type tags in response order
func (re ResponseEnvelope) ActionTypes() []string {
	types := make([]string, 0, len(re.Actions))
	for _, action := range re.Actions {
		types = append(types, action.ActionType())
	}
	return types
}
