// Package botflow hands inbound calls to a conversational bot. The bot
// alias, welcome message and voice focus default come from the external
// parameter source, or from fixed configuration when an alias is pinned.
package botflow

import (
	"context"
	"strings"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

const (
	// FallbackIntentName is the platform's sentinel for unrecognized input
	FallbackIntentName = "FallbackIntent"

	// botAliasArnPrefix is the identifier shape a usable alias must have
	botAliasArnPrefix = "arn:aws:lex:"

	apologyText       = "<speak>Hello!  Our apologies, there is no Amazon Lex Bot attached to this number.  Goodbye!</speak>"
	defaultWelcomeMsg = "Welcome to AWS Chime SDK Voice Service. Please say what you would like to do.  For example: I'd like to book a room, or, I'd like to rent a car."
	missingWelcomeMsg = "No welcome message.  "
)

// ParamSource supplies configuration values fetched by name at
// event-handling time
type ParamSource interface {
	Get(ctx context.Context, requestID string, name string) (string, error)
}

// Config holds the flow's fixed configuration. When BotAliasArn is set
// the parameter source is not consulted and voice focus is always
// enabled on the inbound leg.
type Config struct {
	LexArnParamName     string
	WelcomeMsgParamName string
	VoiceFocusParamName string
	BotAliasArn         string
	LocaleID            string
}

// Evaluator derives the next action list for the bot flow
type Evaluator struct {
	conf   Config
	params ParamSource
}

// NewEvaluator returns the flow evaluator
func NewEvaluator(conf Config, params ParamSource) *Evaluator {
	return &Evaluator{conf: conf, params: params}
}

// HandleEvent returns the response for one call event
func (ev *Evaluator) HandleEvent(ctx context.Context, requestID string, event contracts.CallEvent) contracts.ResponseEnvelope {
	response := contracts.NewResponseEnvelope()
	switch event.InvocationEventType {
	case contracts.EventNewInboundCall:
		response.Actions = ev.startBot(ctx, requestID, event)
	case contracts.EventActionSuccessful:
		response.Actions = ev.actionSuccessful(ctx, requestID, event)
	case contracts.EventHangup:
		ymlogger.LogInfof(requestID, "Call hung up")
	default:
		ymlogger.LogInfof(requestID, "Ignoring event type [%s]", event.InvocationEventType)
	}
	return response
}

func (ev *Evaluator) startBot(ctx context.Context, requestID string, event contracts.CallEvent) []smaaction.Action {
	botAlias, welcomeMsg, voiceFocus := ev.resolveBotConfig(ctx, requestID)
	if !strings.HasPrefix(botAlias, botAliasArnPrefix) {
		ymlogger.LogErrorf(requestID, "Resolved bot alias [%s] does not look like a Lex ARN", botAlias)
		return []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewSpeak(apologyText),
			smaaction.NewHangup(),
		}
	}
	callID := event.CallDetails.Participants[0].CallID
	return []smaaction.Action{
		smaaction.NewPause(),
		smaaction.NewVoiceFocus(callID, voiceFocus),
		smaaction.NewStartBotConversation(botAlias, ev.conf.LocaleID, welcomeMsg),
	}
}

// actionSuccessful handles the intent resolution outcome: the fallback
// sentinel re-prompts with the same bot configuration, any recognized
// intent ends the call.
func (ev *Evaluator) actionSuccessful(ctx context.Context, requestID string, event contracts.CallEvent) []smaaction.Action {
	intentName := event.IntentName()
	if len(intentName) <= 0 {
		ymlogger.LogErrorf(requestID, "ACTION_SUCCESSFUL event carries no intent result, ending the call")
		return []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewHangup(),
		}
	}
	if intentName == FallbackIntentName {
		botAlias, welcomeMsg, _ := ev.resolveBotConfig(ctx, requestID)
		if !strings.HasPrefix(botAlias, botAliasArnPrefix) {
			ymlogger.LogErrorf(requestID, "Bot alias [%s] no longer resolves to a Lex ARN, ending the call", botAlias)
			return []smaaction.Action{
				smaaction.NewPause(),
				smaaction.NewHangup(),
			}
		}
		return []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewStartBotConversation(botAlias, ev.conf.LocaleID, welcomeMsg),
		}
	}
	ymlogger.LogInfof(requestID, "Intent [%s] resolved, ending the call", intentName)
	return []smaaction.Action{
		smaaction.NewPause(),
		smaaction.NewHangup(),
	}
}

// resolveBotConfig returns (alias, welcome message, voice focus). Every
// lookup degrades to a safe default; a broken parameter source must
// never fail the response.
func (ev *Evaluator) resolveBotConfig(ctx context.Context, requestID string) (string, string, bool) {
	if len(ev.conf.BotAliasArn) > 0 {
		return ev.conf.BotAliasArn, defaultWelcomeMsg, true
	}

	botAlias := "none"
	if len(ev.conf.LexArnParamName) > 0 && ev.params != nil {
		if value, err := ev.params.Get(ctx, requestID, ev.conf.LexArnParamName); err == nil && len(value) > 0 {
			botAlias = value
		} else {
			ymlogger.LogErrorf(requestID, "Could not resolve the bot alias from [%s]. Error: [%#v]", ev.conf.LexArnParamName, err)
		}
	}

	welcomeMsg := ""
	if len(ev.conf.WelcomeMsgParamName) > 0 && ev.params != nil {
		if value, err := ev.params.Get(ctx, requestID, ev.conf.WelcomeMsgParamName); err == nil {
			welcomeMsg = value
		} else {
			ymlogger.LogErrorf(requestID, "Could not resolve the welcome message from [%s]. Error: [%#v]", ev.conf.WelcomeMsgParamName, err)
		}
	}
	if len(welcomeMsg) <= 0 {
		ymlogger.LogInfof(requestID, "No welcome message set in param [%s]", ev.conf.WelcomeMsgParamName)
		welcomeMsg = missingWelcomeMsg
	}

	voiceFocus := "false"
	if len(ev.conf.VoiceFocusParamName) > 0 && ev.params != nil {
		if value, err := ev.params.Get(ctx, requestID, ev.conf.VoiceFocusParamName); err == nil {
			voiceFocus = value
		} else {
			ymlogger.LogErrorf(requestID, "Could not resolve the voice focus default from [%s]. Error: [%#v]", ev.conf.VoiceFocusParamName, err)
		}
	}
	return botAlias, welcomeMsg, voiceFocus == "true" || voiceFocus == "on"
}
