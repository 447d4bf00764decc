// Package smaaction holds the closed catalog of control actions a SIP
// media application can be asked to execute. Builders return fresh
// values on every call; no action is ever shared between invocations
// or mutated after construction.
package smaaction

import (
	"encoding/json"
	"fmt"
)

// Action type tags recognized by the platform
const (
	TypeSpeak                = "Speak"
	TypeSpeakAndGetDigits    = "SpeakAndGetDigits"
	TypePause                = "Pause"
	TypeCallAndBridge        = "CallAndBridge"
	TypeReceiveDigits        = "ReceiveDigits"
	TypeVoiceFocus           = "VoiceFocus"
	TypePlayAudio            = "PlayAudio"
	TypeStartBotConversation = "StartBotConversation"
	TypeHangup               = "Hangup"
)

// Action is one instruction in the ordered list returned per event
type Action interface {
	ActionType() string
}

// Decode parses a single wire-format action back into its typed variant.
// Unrecognized type tags are an error; the catalog is closed.
func Decode(data []byte) (Action, error) {
	var probe struct {
		Type string `json:"Type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case TypeSpeak:
		var a Speak
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeSpeakAndGetDigits:
		var a SpeakAndGetDigits
		err := json.Unmarshal(data, &a)
		return a, err
	case TypePause:
		var a Pause
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeCallAndBridge:
		var a CallAndBridge
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeReceiveDigits:
		var a ReceiveDigits
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeVoiceFocus:
		var a VoiceFocus
		err := json.Unmarshal(data, &a)
		return a, err
	case TypePlayAudio:
		var a PlayAudio
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeStartBotConversation:
		var a StartBotConversation
		err := json.Unmarshal(data, &a)
		return a, err
	case TypeHangup:
		var a Hangup
		err := json.Unmarshal(data, &a)
		return a, err
	}
	return nil, fmt.Errorf("unrecognized action type [%s]", probe.Type)
}

// AudioSource addresses an audio asset in bucket storage
type AudioSource struct {
	Type       string `json:"Type"`
	BucketName string `json:"BucketName"`
	Key        string `json:"Key"`
}

// NewS3AudioSource returns an S3-backed audio source
func NewS3AudioSource(bucketName string, key string) AudioSource {
	return AudioSource{
		Type:       "S3",
		BucketName: bucketName,
		Key:        key,
	}
}
