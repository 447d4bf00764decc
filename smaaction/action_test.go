package smaaction

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		NewSpeak("<speak>hello</speak>"),
		NewSpeakAndGetDigits("call-id-1", "<speak>enter digits</speak>", "<speak>oops</speak>"),
		NewPause(),
		NewCallAndBridge("+15551112222", "+12025550123").WithRingbackTone(NewS3AudioSource("wav-bucket", "ringback.wav")),
		NewReceiveDigits("call-id-1", "[0-1]$"),
		NewVoiceFocus("call-id-1", true),
		NewPlayAudio(NewS3AudioSource("wav-bucket", "hello-goodbye.wav")),
		NewStartBotConversation("arn:aws:lex:us-east-1:000000000000:bot-alias/BOT/ALIAS", "en_US", "Welcome"),
		NewHangup(),
	}
	for _, action := range actions {
		t.Run(action.ActionType(), func(t *testing.T) {
			data, err := json.Marshal(action)
			if err != nil {
				t.Fatalf("Failed to marshal the action: %v", err)
			}
			decoded, err := Decode(data)
			if err != nil {
				t.Fatalf("Failed to decode the action: %v", err)
			}
			if !reflect.DeepEqual(action, decoded) {
				t.Errorf("Round trip mismatch. Sent %#v, got %#v", action, decoded)
			}
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	if _, err := Decode([]byte(`{"Type":"TransferCall","Parameters":{}}`)); err == nil {
		t.Errorf("Expected error decoding an unknown action type")
	}
}

func TestBuildersReturnFreshValues(t *testing.T) {
	t.Run("terminator_digits_not_shared", func(t *testing.T) {
		first := NewSpeakAndGetDigits("call-id-1", "prompt", "failure")
		second := NewSpeakAndGetDigits("call-id-2", "prompt", "failure")
		first.Parameters.TerminatorDigits[0] = "*"
		if second.Parameters.TerminatorDigits[0] == "*" {
			t.Errorf("Terminator digits are shared between built actions")
		}
	})
	t.Run("bridge_endpoints_not_shared", func(t *testing.T) {
		first := NewCallAndBridge("+15551112222", "+12025550123")
		second := NewCallAndBridge("+15551112222", "+12025550123")
		first.Parameters.Endpoints[0].URI = "+19995550000"
		if second.Parameters.Endpoints[0].URI == "+19995550000" {
			t.Errorf("Endpoints are shared between built actions")
		}
	})
}

func TestSpeechInheritDefaults(t *testing.T) {
	primary := SpeechParameters{
		Text:         "prompt",
		Engine:       "neural",
		LanguageCode: "en-US",
		TextType:     "ssml",
		VoiceID:      "Joanna",
	}
	t.Run("unset_fields_inherit", func(t *testing.T) {
		failure := SpeechParameters{Text: "oops"}.InheritDefaults(primary)
		if failure.Engine != "neural" || failure.LanguageCode != "en-US" || failure.TextType != "ssml" || failure.VoiceID != "Joanna" {
			t.Errorf("Unset fields did not inherit from the primary block: %#v", failure)
		}
		if failure.Text != "oops" {
			t.Errorf("Expected failure text %q, got %q", "oops", failure.Text)
		}
	})
	t.Run("set_fields_kept", func(t *testing.T) {
		failure := SpeechParameters{Text: "oops", VoiceID: "Kevin"}.InheritDefaults(primary)
		if failure.VoiceID != "Kevin" {
			t.Errorf("Explicit voice was overridden, got %q", failure.VoiceID)
		}
	})
}

func TestNewSpeakDefaults(t *testing.T) {
	speak := NewSpeak("<speak>hello</speak>")
	if speak.Parameters.Engine != "neural" {
		t.Errorf("Expected engine %q, got %q", "neural", speak.Parameters.Engine)
	}
	if speak.Parameters.VoiceID != "Matthew" {
		t.Errorf("Expected voice %q, got %q", "Matthew", speak.Parameters.VoiceID)
	}
	if speak.Parameters.TextType != "ssml" {
		t.Errorf("Expected text type %q, got %q", "ssml", speak.Parameters.TextType)
	}
}

func TestNewCallAndBridgeDefaults(t *testing.T) {
	bridge := NewCallAndBridge("+15551112222", "+12025550123")
	if bridge.Parameters.CallTimeoutSeconds != 30 {
		t.Errorf("Expected call timeout 30, got %d", bridge.Parameters.CallTimeoutSeconds)
	}
	if bridge.Parameters.Endpoints[0].BridgeEndpointType != BridgeEndpointTypePSTN {
		t.Errorf("Expected PSTN endpoint, got %q", bridge.Parameters.Endpoints[0].BridgeEndpointType)
	}
	if bridge.Parameters.RingbackTone != nil {
		t.Errorf("Expected no ringback tone by default")
	}
}
