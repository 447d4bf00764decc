package queuemanager

import (
	"encoding/json"
	"time"

	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

// AuditEvent is one handled-invocation record published for analytics
type AuditEvent struct {
	RequestID   string   `json:"request_id"`
	Flow        string   `json:"flow"`
	EventType   string   `json:"event_type"`
	ActionTypes []string `json:"action_types"`
	HandledTime string   `json:"handled_time"`
}

var timeLayout = "2006-01-02T15:04:05.000"

// PublishAuditEvent publishes the record, best effort. Failures are
// logged and swallowed; auditing must never affect the event response.
func PublishAuditEvent(mParams QueueMessageParams, requestID string, flow string, eventType string, actionTypes []string) {
	if !Initialized() {
		return
	}
	audit := AuditEvent{
		RequestID:   requestID,
		Flow:        flow,
		EventType:   eventType,
		ActionTypes: actionTypes,
		HandledTime: time.Now().Format(timeLayout),
	}
	body, err := json.Marshal(audit)
	if err != nil {
		ymlogger.LogErrorf(requestID, "Failed to marshal the audit event. Error: [%#v]", err)
		return
	}
	if err := publish(mParams, body); err != nil {
		ymlogger.LogErrorf(requestID, "Failed to publish the audit event. Error: [%#v]", err)
	}
}
