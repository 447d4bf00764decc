package smaaction

// Speech parameter defaults used across the flows
const (
	DefaultEngine        = "neural"
	DefaultLanguageCode  = "en-US"
	DefaultTextType      = "ssml"
	DefaultVoiceID       = "Matthew"
	DefaultPromptVoiceID = "Joanna"
)

// SpeechParameters describes one block of text to be spoken
type SpeechParameters struct {
	Text         string `json:"Text"`
	Engine       string `json:"Engine,omitempty"`
	LanguageCode string `json:"LanguageCode,omitempty"`
	TextType     string `json:"TextType,omitempty"`
	VoiceID      string `json:"VoiceId,omitempty"`
}

// InheritDefaults fills the unset fields of a failure/welcome speech
// block from the primary block's corresponding fields.
func (sp SpeechParameters) InheritDefaults(primary SpeechParameters) SpeechParameters {
	if len(sp.Engine) <= 0 {
		sp.Engine = primary.Engine
	}
	if len(sp.LanguageCode) <= 0 {
		sp.LanguageCode = primary.LanguageCode
	}
	if len(sp.TextType) <= 0 {
		sp.TextType = primary.TextType
	}
	if len(sp.VoiceID) <= 0 {
		sp.VoiceID = primary.VoiceID
	}
	return sp
}

// SpeakParameters is the parameter block for the Speak action
type SpeakParameters struct {
	Engine       string `json:"Engine"`
	LanguageCode string `json:"LanguageCode,omitempty"`
	Text         string `json:"Text"`
	TextType     string `json:"TextType,omitempty"`
	VoiceID      string `json:"VoiceId"`
}

// Speak asks the platform to speak the given text on the call
type Speak struct {
	Type       string          `json:"Type"`
	Parameters SpeakParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (Speak) ActionType() string { return TypeSpeak }

// NewSpeak returns a Speak action with the default neural voice
func NewSpeak(text string) Speak {
	return Speak{
		Type: TypeSpeak,
		Parameters: SpeakParameters{
			Engine:       DefaultEngine,
			LanguageCode: DefaultLanguageCode,
			Text:         text,
			TextType:     DefaultTextType,
			VoiceID:      DefaultVoiceID,
		},
	}
}

// SpeakAndGetDigitsParameters is the parameter block for the
// SpeakAndGetDigits action
type SpeakAndGetDigitsParameters struct {
	CallID                                string           `json:"CallId"`
	InputDigitsRegex                      string           `json:"InputDigitsRegex,omitempty"`
	SpeechParameters                      SpeechParameters `json:"SpeechParameters"`
	FailureSpeechParameters               SpeechParameters `json:"FailureSpeechParameters"`
	MinNumberOfDigits                     int              `json:"MinNumberOfDigits,omitempty"`
	MaxNumberOfDigits                     int              `json:"MaxNumberOfDigits,omitempty"`
	TerminatorDigits                      []string         `json:"TerminatorDigits,omitempty"`
	InBetweenDigitsDurationInMilliseconds int              `json:"InBetweenDigitsDurationInMilliseconds,omitempty"`
	Repeat                                int              `json:"Repeat,omitempty"`
	RepeatDurationInMilliseconds          int              `json:"RepeatDurationInMilliseconds"`
}

// SpeakAndGetDigits speaks a prompt and collects digits from the caller
type SpeakAndGetDigits struct {
	Type       string                      `json:"Type"`
	Parameters SpeakAndGetDigitsParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (SpeakAndGetDigits) ActionType() string { return TypeSpeakAndGetDigits }

// NewSpeakAndGetDigits returns a digit-collection prompt on the given
// leg. The failure block inherits every field it does not set from the
// primary speech block.
func NewSpeakAndGetDigits(callID string, promptText string, failureText string) SpeakAndGetDigits {
	speech := SpeechParameters{
		Text:         promptText,
		Engine:       DefaultEngine,
		LanguageCode: DefaultLanguageCode,
		TextType:     DefaultTextType,
		VoiceID:      DefaultPromptVoiceID,
	}
	failure := SpeechParameters{Text: failureText}.InheritDefaults(speech)
	return SpeakAndGetDigits{
		Type: TypeSpeakAndGetDigits,
		Parameters: SpeakAndGetDigitsParameters{
			CallID:                  callID,
			SpeechParameters:        speech,
			FailureSpeechParameters: failure,
			TerminatorDigits:        []string{"#"},
			InBetweenDigitsDurationInMilliseconds: 5000,
			Repeat:                       3,
			RepeatDurationInMilliseconds: 10000,
		},
	}
}
