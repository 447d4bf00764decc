package callbackflow

import (
	"context"
	"testing"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
)

type placedCall struct {
	fromNumber            string
	toNumber              string
	sipMediaApplicationID string
}

type fakeDialer struct {
	placed []placedCall
}

func (fd *fakeDialer) PlaceCall(ctx context.Context, requestID string, fromNumber string, toNumber string, sipMediaApplicationID string) {
	fd.placed = append(fd.placed, placedCall{
		fromNumber:            fromNumber,
		toNumber:              toNumber,
		sipMediaApplicationID: sipMediaApplicationID,
	})
}

func callEvent(eventType string, direction string) contracts.CallEvent {
	return contracts.CallEvent{
		InvocationEventType: eventType,
		CallDetails: contracts.CallDetails{
			SipMediaApplicationID: "app-1",
			Participants: []contracts.Participant{
				{CallID: "leg-a", From: "+15551112222", To: "+15553334444", Direction: direction},
			},
		},
	}
}

func actionTypes(actions []smaaction.Action) []string {
	types := make([]string, 0, len(actions))
	for _, action := range actions {
		types = append(types, action.ActionType())
	}
	return types
}

func TestInboundGreetingThenHangup(t *testing.T) {
	ev := NewEvaluator(&fakeDialer{})
	response := ev.HandleEvent(context.Background(), "test", callEvent(contracts.EventNewInboundCall, contracts.DirectionInbound))
	got := actionTypes(response.Actions)
	want := []string{smaaction.TypePause, smaaction.TypeSpeak, smaaction.TypeHangup}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Action %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGreetingSpokenEndsInboundLeg(t *testing.T) {
	ev := NewEvaluator(&fakeDialer{})
	event := callEvent(contracts.EventActionSuccessful, contracts.DirectionInbound)
	event.ActionData = &contracts.ActionData{Type: smaaction.TypeSpeak}
	response := ev.HandleEvent(context.Background(), "test", event)
	if len(response.Actions) != 1 {
		t.Fatalf("Expected 1 action, got %d", len(response.Actions))
	}
	if _, ok := response.Actions[0].(smaaction.Hangup); !ok {
		t.Errorf("Expected a Hangup, got %s", response.Actions[0].ActionType())
	}
}

func TestInboundHangupPlacesCallback(t *testing.T) {
	dialer := &fakeDialer{}
	ev := NewEvaluator(dialer)
	response := ev.HandleEvent(context.Background(), "test", callEvent(contracts.EventHangup, contracts.DirectionInbound))
	if len(response.Actions) != 0 {
		t.Errorf("Expected no actions on hangup, got %d", len(response.Actions))
	}
	if len(dialer.placed) != 1 {
		t.Fatalf("Expected one callback placement, got %d", len(dialer.placed))
	}
	placed := dialer.placed[0]
	if placed.fromNumber != "+15553334444" {
		t.Errorf("Expected the callback placed from the dialed-in number, got %q", placed.fromNumber)
	}
	if placed.toNumber != "+15551112222" {
		t.Errorf("Expected the callback placed to the original caller, got %q", placed.toNumber)
	}
	if placed.sipMediaApplicationID != "app-1" {
		t.Errorf("Expected the application id echoed through, got %q", placed.sipMediaApplicationID)
	}
}

func TestOutboundHangupDoesNotRedial(t *testing.T) {
	dialer := &fakeDialer{}
	ev := NewEvaluator(dialer)
	ev.HandleEvent(context.Background(), "test", callEvent(contracts.EventHangup, contracts.DirectionOutbound))
	if len(dialer.placed) != 0 {
		t.Errorf("Expected no placement on the callback leg's hangup, got %d", len(dialer.placed))
	}
}

func TestCallbackAnswered(t *testing.T) {
	ev := NewEvaluator(&fakeDialer{})
	response := ev.HandleEvent(context.Background(), "test", callEvent(contracts.EventCallAnswered, contracts.DirectionOutbound))
	got := actionTypes(response.Actions)
	want := []string{smaaction.TypePause, smaaction.TypeSpeak, smaaction.TypePause, smaaction.TypeHangup}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Action %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestProgressEventsProduceNoActions(t *testing.T) {
	ev := NewEvaluator(&fakeDialer{})
	for _, eventType := range []string{contracts.EventNewOutboundCall, contracts.EventRinging} {
		response := ev.HandleEvent(context.Background(), "test", callEvent(eventType, contracts.DirectionOutbound))
		if len(response.Actions) != 0 {
			t.Errorf("Expected no actions for %s, got %d", eventType, len(response.Actions))
		}
	}
}

func TestNilDialerIsSafe(t *testing.T) {
	ev := NewEvaluator(nil)
	response := ev.HandleEvent(context.Background(), "test", callEvent(contracts.EventHangup, contracts.DirectionInbound))
	if len(response.Actions) != 0 {
		t.Errorf("Expected no actions, got %d", len(response.Actions))
	}
}
