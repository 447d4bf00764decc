package requesthandler

import (
	"context"
	"net/http"

	"bitbucket.org/yellowmessenger/chime-sma-responder/configmanager"
	"bitbucket.org/yellowmessenger/chime-sma-responder/contracts"
	"bitbucket.org/yellowmessenger/chime-sma-responder/metrics"
	"bitbucket.org/yellowmessenger/chime-sma-responder/queuemanager"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"

	guuid "github.com/google/uuid"
	"github.com/labstack/echo"
	"golang.org/x/time/rate"
)

const FlowAPIRequestsPerSecond = 50
const FlowAPIBurst = 100

var flowLimiter = rate.NewLimiter(FlowAPIRequestsPerSecond, FlowAPIBurst)

// SetFlowRateLimit replaces the shared limiter with the configured rate.
// Called once at startup, before the routes are served.
func SetFlowRateLimit(requestsPerSecond int, burst int) {
	flowLimiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// FlowEvaluator derives the next action list from one call event
type FlowEvaluator interface {
	HandleEvent(ctx context.Context, requestID string, event contracts.CallEvent) contracts.ResponseEnvelope
}

// handleFlowEvent is the shared handler body for every flow route. A
// non-200 response or an escaped panic would make the platform fail the
// call, so every failure path degrades to an empty action list instead.
func handleFlowEvent(c echo.Context, flow string, evaluator FlowEvaluator) error {
	requestID := guuid.New().String()
	ctx := c.Request().Context()

	if flowLimiter.Allow() == false {
		ymlogger.LogCriticalf(requestID, "Flow [%s] is over the request rate, returning no actions", flow)
		return RawResponse(c, contracts.NewResponseEnvelope(), http.StatusOK)
	}

	event := new(contracts.CallEvent)
	if err := event.ExtractFromHTTP(c); err != nil {
		ymlogger.LogErrorf(requestID, "Failed to decode the call event. Error: [%#v]", err)
		return RawResponse(c, contracts.NewResponseEnvelope(), http.StatusOK)
	}
	if err := event.Validate(); err != nil {
		ymlogger.LogErrorf(requestID, "Malformed call event, treating as unknown. Error: [%#v]", err)
		return RawResponse(c, contracts.NewResponseEnvelope(), http.StatusOK)
	}

	ymlogger.LogInfof(requestID, "Flow [%s] invoked with event type [%s]", flow, event.InvocationEventType)
	response := evaluateSafely(ctx, requestID, flow, evaluator, *event)

	metrics.SendFlowMetric(flow, event.InvocationEventType, len(response.Actions))
	if configmanager.ConfStore != nil && configmanager.ConfStore.EnableEventAudit {
		queuemanager.PublishAuditEvent(
			configmanager.ConfStore.QueueMessageParams,
			requestID,
			flow,
			event.InvocationEventType,
			response.ActionTypes(),
		)
	}
	ymlogger.LogInfof(requestID, "Flow [%s] returning actions %v", flow, response.ActionTypes())
	return RawResponse(c, response, http.StatusOK)
}

func evaluateSafely(ctx context.Context, requestID string, flow string, evaluator FlowEvaluator, event contracts.CallEvent) (response contracts.ResponseEnvelope) {
	response = contracts.NewResponseEnvelope()
	defer func() {
		if r := recover(); r != nil {
			ymlogger.LogCriticalf(requestID, "Flow [%s] panicked handling [%s]: %v", flow, event.InvocationEventType, r)
			response = contracts.NewResponseEnvelope()
		}
	}()
	response = evaluator.HandleEvent(ctx, requestID, event)
	return response
}
