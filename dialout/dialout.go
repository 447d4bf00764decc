// Package dialout places outbound calls through the SIP media
// application, best effort. Placement requests are queued and worked
// off asynchronously; a failed placement is logged and recorded, never
// propagated back to the event response that triggered it.
package dialout

import (
	"context"

	"bitbucket.org/yellowmessenger/chime-sma-responder/models/mysql"
	"bitbucket.org/yellowmessenger/chime-sma-responder/newrelic"
	"bitbucket.org/yellowmessenger/chime-sma-responder/phonenumber"
	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/chime"
)

// Request is one call placement to be attempted
type Request struct {
	RequestID             string
	FromPhoneNumber       string
	ToPhoneNumber         string
	SipMediaApplicationID string
}

type chimeAPI interface {
	CreateSipMediaApplicationCallWithContext(aws.Context, *chime.CreateSipMediaApplicationCallInput, ...request.Option) (*chime.CreateSipMediaApplicationCallOutput, error)
}

// Dialer queues call placement requests and works them off
type Dialer struct {
	svc      chimeAPI
	queue    chan Request
	maxTries int
	auditDB  bool
}

// NewDialer returns a Dialer placing calls in the given region and
// starts its workers
func NewDialer(region string, workers int, maxTries int, auditDB bool) (*Dialer, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}
	d := newDialer(chime.New(sess), maxTries, auditDB)
	for i := 0; i < workers; i++ {
		go d.work(context.Background())
	}
	return d, nil
}

func newDialer(svc chimeAPI, maxTries int, auditDB bool) *Dialer {
	return &Dialer{
		svc:      svc,
		queue:    make(chan Request, 100),
		maxTries: maxTries,
		auditDB:  auditDB,
	}
}

// PlaceCall enqueues one placement request. It never blocks; when the
// queue is full the request is dropped and logged.
func (d *Dialer) PlaceCall(ctx context.Context, requestID string, fromNumber string, toNumber string, sipMediaApplicationID string) {
	toPN := phonenumber.NewPhoneNumber(toNumber)
	if err := toPN.Parse(); err != nil || !toPN.IsValid {
		ymlogger.LogErrorf(requestID, "Callback number [%s] did not parse as a valid number. Error: [%#v]. Attempting anyway", toNumber, err)
	}
	req := Request{
		RequestID:             requestID,
		FromPhoneNumber:       fromNumber,
		ToPhoneNumber:         toNumber,
		SipMediaApplicationID: sipMediaApplicationID,
	}
	if d.auditDB && mysql.Initialized() {
		if err := mysql.InsertDialOutRecord(requestID, fromNumber, toNumber, sipMediaApplicationID); err != nil {
			ymlogger.LogErrorf(requestID, "Failed to save the dial-out record. Error: [%#v]", err)
		}
	}
	select {
	case d.queue <- req:
	default:
		ymlogger.LogCriticalf(requestID, "Dial-out queue is full. Dropping the placement request to [%s]", toNumber)
		d.markStatus(req, "dropped", 0)
	}
}

func (d *Dialer) work(ctx context.Context) {
	for req := range d.queue {
		d.place(ctx, req)
	}
}

func (d *Dialer) place(ctx context.Context, req Request) {
	input := &chime.CreateSipMediaApplicationCallInput{
		FromPhoneNumber:       aws.String(req.FromPhoneNumber),
		ToPhoneNumber:         aws.String(req.ToPhoneNumber),
		SipMediaApplicationId: aws.String(req.SipMediaApplicationID),
	}
	var err error
	for i := 0; i < d.maxTries; i++ {
		_, err = d.svc.CreateSipMediaApplicationCallWithContext(ctx, input)
		newrelic.SendCustomEvent("dialout_metrics", map[string]interface{}{
			"status": "request_sent",
			"value":  1,
		})
		if err == nil {
			ymlogger.LogInfof(req.RequestID, "Placed the callback call. From: [%s] To: [%s]", req.FromPhoneNumber, req.ToPhoneNumber)
			d.markStatus(req, "completed", i+1)
			return
		}
		ymlogger.LogErrorf(req.RequestID, "Try: [%d]. Failed to place the callback call. Error: [%#v]. Retrying", (i + 1), err)
	}
	ymlogger.LogErrorf(req.RequestID, "Exhausted [%d] tries placing the callback call to [%s]", d.maxTries, req.ToPhoneNumber)
	d.markStatus(req, "failed", d.maxTries)
}

func (d *Dialer) markStatus(req Request, status string, tries int) {
	if !d.auditDB || !mysql.Initialized() {
		return
	}
	if err := mysql.UpdateDialOutStatus(req.RequestID, status, tries); err != nil {
		ymlogger.LogErrorf(req.RequestID, "Failed to update the dial-out record. Error: [%#v]", err)
	}
}
