package contracts

import (
	"encoding/json"
	"strings"
	"testing"

	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
)

func TestNewResponseEnvelope(t *testing.T) {
	response := NewResponseEnvelope()
	if response.SchemaVersion != "1.0" {
		t.Errorf("Expected schema version 1.0, got %q", response.SchemaVersion)
	}
	data, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal the envelope: %v", err)
	}
	if !strings.Contains(string(data), `"Actions":[]`) {
		t.Errorf("Empty envelope must carry an empty action array, got %s", string(data))
	}
	if strings.Contains(string(data), "TransactionAttributes") {
		t.Errorf("Empty envelope must not carry transaction attributes, got %s", string(data))
	}
}

func TestActionTypes(t *testing.T) {
	response := NewResponseEnvelope().WithActions(
		smaaction.NewPause(),
		smaaction.NewHangup(),
	)
	types := response.ActionTypes()
	if len(types) != 2 || types[0] != smaaction.TypePause || types[1] != smaaction.TypeHangup {
		t.Errorf("Unexpected action types %v", types)
	}
}
