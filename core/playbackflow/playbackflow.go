// Package playbackflow plays one audio clip to the caller and hangs up,
// stamping fixed transaction attributes onto the envelope so they come
// back on every later event for the same call.
package playbackflow

import (
	"context"

	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/smaaction"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
)

// Config holds the flow's fixed configuration
type Config struct {
	WavFileBucket string
	AudioKey      string
}

// Evaluator derives the next action list for the playback flow
type Evaluator struct {
	conf Config
}

// NewEvaluator returns the flow evaluator
func NewEvaluator(conf Config) *Evaluator {
	return &Evaluator{conf: conf}
}

// HandleEvent returns the response for one call event
func (ev *Evaluator) HandleEvent(ctx context.Context, requestID string, event contracts.CallEvent) contracts.ResponseEnvelope {
	response := contracts.NewResponseEnvelope()
	switch event.InvocationEventType {
	case contracts.EventNewInboundCall:
		response.Actions = []smaaction.Action{
			smaaction.NewPause(),
			smaaction.NewPlayAudio(smaaction.NewS3AudioSource(ev.conf.WavFileBucket, ev.conf.AudioKey)),
			smaaction.NewHangup(),
		}
		response.TransactionAttributes = map[string]string{
			"key1": "val1*",
			"key2": "val2*",
			"key3": "val3*",
		}
	case contracts.EventActionSuccessful:
		ymlogger.LogInfof(requestID, "Playback completed")
	case contracts.EventHangup:
		ymlogger.LogInfof(requestID, "Call hung up")
	default:
		ymlogger.LogInfof(requestID, "Ignoring event type [%s]", event.InvocationEventType)
	}
	return response
}
