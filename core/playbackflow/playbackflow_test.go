package playbackflow

import (
	"context"
	"testing"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
)

func inboundEvent(eventType string) contracts.CallEvent {
	return contracts.CallEvent{
		InvocationEventType: eventType,
		CallDetails: contracts.CallDetails{
			SipMediaApplicationID: "app-1",
			Participants: []contracts.Participant{
				{CallID: "leg-a", From: "+15551112222", To: "+15553334444", Direction: contracts.DirectionInbound},
			},
		},
	}
}

func TestInboundPlaysClipAndHangsUp(t *testing.T) {
	ev := NewEvaluator(Config{WavFileBucket: "wav-bucket", AudioKey: "hello-goodbye.wav"})
	response := ev.HandleEvent(context.Background(), "test", inboundEvent(contracts.EventNewInboundCall))
	if len(response.Actions) != 3 {
		t.Fatalf("Expected 3 actions, got %d", len(response.Actions))
	}
	if _, ok := response.Actions[0].(smaaction.Pause); !ok {
		t.Errorf("Expected first action Pause, got %s", response.Actions[0].ActionType())
	}
	play, ok := response.Actions[1].(smaaction.PlayAudio)
	if !ok {
		t.Fatalf("Expected second action PlayAudio, got %s", response.Actions[1].ActionType())
	}
	if play.Parameters.AudioSource.BucketName != "wav-bucket" || play.Parameters.AudioSource.Key != "hello-goodbye.wav" {
		t.Errorf("Unexpected audio source %#v", play.Parameters.AudioSource)
	}
	if _, ok := response.Actions[2].(smaaction.Hangup); !ok {
		t.Errorf("Expected third action Hangup, got %s", response.Actions[2].ActionType())
	}
}

func TestInboundStampsTransactionAttributes(t *testing.T) {
	ev := NewEvaluator(Config{WavFileBucket: "wav-bucket", AudioKey: "hello-goodbye.wav"})
	response := ev.HandleEvent(context.Background(), "test", inboundEvent(contracts.EventNewInboundCall))
	want := map[string]string{"key1": "val1*", "key2": "val2*", "key3": "val3*"}
	if len(response.TransactionAttributes) != len(want) {
		t.Fatalf("Expected %d attributes, got %d", len(want), len(response.TransactionAttributes))
	}
	for k, v := range want {
		if response.TransactionAttributes[k] != v {
			t.Errorf("Attribute %s: expected %q, got %q", k, v, response.TransactionAttributes[k])
		}
	}
}

func TestLaterEventsProduceNoActions(t *testing.T) {
	ev := NewEvaluator(Config{WavFileBucket: "wav-bucket", AudioKey: "hello-goodbye.wav"})
	for _, eventType := range []string{contracts.EventActionSuccessful, contracts.EventHangup, contracts.EventRinging} {
		response := ev.HandleEvent(context.Background(), "test", inboundEvent(eventType))
		if len(response.Actions) != 0 {
			t.Errorf("Expected no actions for %s, got %d", eventType, len(response.Actions))
		}
		if response.TransactionAttributes != nil {
			t.Errorf("Expected no attributes for %s", eventType)
		}
	}
}
