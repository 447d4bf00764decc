package smaaction

// DialogActionTypeElicitIntent asks the bot to open the conversation by
// eliciting an intent
const DialogActionTypeElicitIntent = "ElicitIntent"

// DialogAction tells the bot how to open the conversation
type DialogAction struct {
	Type string `json:"Type"`
}

// BotSessionState seeds the bot's session
type BotSessionState struct {
	DialogAction DialogAction `json:"DialogAction"`
}

// WelcomeMessage is spoken to the caller before the bot listens
type WelcomeMessage struct {
	ContentType string `json:"ContentType"`
	Content     string `json:"Content"`
}

// BotConfiguration is the conversation setup for StartBotConversation
type BotConfiguration struct {
	SessionState    BotSessionState  `json:"SessionState"`
	WelcomeMessages []WelcomeMessage `json:"WelcomeMessages,omitempty"`
}

// StartBotConversationParameters is the parameter block for
// StartBotConversation
type StartBotConversationParameters struct {
	BotAliasArn   string           `json:"BotAliasArn"`
	LocaleID      string           `json:"LocaleId"`
	Configuration BotConfiguration `json:"Configuration"`
}

// StartBotConversation hands the call audio to a conversational bot
// until an intent is resolved
type StartBotConversation struct {
	Type       string                         `json:"Type"`
	Parameters StartBotConversationParameters `json:"Parameters"`
}

// ActionType returns the action's type tag
func (StartBotConversation) ActionType() string { return TypeStartBotConversation }

// NewStartBotConversation starts the bot behind the given alias with a
// plain-text welcome message
func NewStartBotConversation(botAliasArn string, localeID string, welcomeMsg string) StartBotConversation {
	return StartBotConversation{
		Type: TypeStartBotConversation,
		Parameters: StartBotConversationParameters{
			BotAliasArn: botAliasArn,
			LocaleID:    localeID,
			Configuration: BotConfiguration{
				SessionState: BotSessionState{
					DialogAction: DialogAction{
						Type: DialogActionTypeElicitIntent,
					},
				},
				WelcomeMessages: []WelcomeMessage{
					{
						ContentType: "PlainText",
						Content:     welcomeMsg,
					},
				},
			},
		},
	}
}
