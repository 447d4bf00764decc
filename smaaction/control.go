package smaaction

// DefaultPauseMilliseconds is the pause used between actions across the
// flows. The platform takes this field as a string on the wire.
const DefaultPauseMilliseconds = "1000"

// PauseParameters is the parameter block for Pause
type PauseParameters struct {
	DurationInMilliseconds string `json:"DurationInMilliseconds"`
}

// Pause waits before executing the next action in the list
type Pause struct {
	Type       string          `json:"Type"`
	Parameters PauseParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (Pause) ActionType() string { return TypePause }

// NewPause waits for the default one second
func NewPause() Pause {
	return Pause{
		Type: TypePause,
		Parameters: PauseParameters{
			DurationInMilliseconds: DefaultPauseMilliseconds,
		},
	}
}

// HangupParameters is the parameter block for Hangup
type HangupParameters struct {
	SipResponseCode string `json:"SipResponseCode,omitempty"`
	ParticipantTag  string `json:"ParticipantTag,omitempty"`
}

// Hangup ends the call
type Hangup struct {
	Type       string           `json:"Type"`
	Parameters HangupParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (Hangup) ActionType() string { return TypeHangup }

// NewHangup ends the call normally
func NewHangup() Hangup {
	return Hangup{
		Type: TypeHangup,
		Parameters: HangupParameters{
			SipResponseCode: "0",
		},
	}
}

// VoiceFocusParameters is the parameter block for VoiceFocus
type VoiceFocusParameters struct {
	Enable bool   `json:"Enable"`
	CallID string `json:"CallId"`
}

// VoiceFocus toggles noise suppression on one leg
type VoiceFocus struct {
	Type       string               `json:"Type"`
	Parameters VoiceFocusParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (VoiceFocus) ActionType() string { return TypeVoiceFocus }

// NewVoiceFocus toggles noise suppression on the given leg
func NewVoiceFocus(callID string, enable bool) VoiceFocus {
	return VoiceFocus{
		Type: TypeVoiceFocus,
		Parameters: VoiceFocusParameters{
			Enable: enable,
			CallID: callID,
		},
	}
}

// ReceiveDigitsParameters is the parameter block for ReceiveDigits
type ReceiveDigitsParameters struct {
	CallID                                string `json:"CallId,omitempty"`
	ParticipantTag                        string `json:"ParticipantTag,omitempty"`
	InputDigitsRegex                      string `json:"InputDigitsRegex"`
	InBetweenDigitsDurationInMilliseconds int    `json:"InBetweenDigitsDurationInMilliseconds,omitempty"`
	FlushDigitsDurationInMilliseconds     int    `json:"FlushDigitsDurationInMilliseconds,omitempty"`
}

// ReceiveDigits listens for digits on a leg without a prompt. The regex
// anchors on the end of the accumulated digit buffer, because the
// platform reports progressively accumulated digits.
type ReceiveDigits struct {
	Type       string                  `json:"Type"`
	Parameters ReceiveDigitsParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (ReceiveDigits) ActionType() string { return TypeReceiveDigits }

// NewReceiveDigits arms digit collection on the given leg
func NewReceiveDigits(callID string, inputDigitsRegex string) ReceiveDigits {
	return ReceiveDigits{
		Type: TypeReceiveDigits,
		Parameters: ReceiveDigitsParameters{
			CallID:           callID,
			InputDigitsRegex: inputDigitsRegex,
			InBetweenDigitsDurationInMilliseconds: 1000,
			FlushDigitsDurationInMilliseconds:     10000,
		},
	}
}
