package dialout

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	awsrequest "github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/chime"
)

type fakeChime struct {
	failures int
	calls    int
	inputs   []*chime.CreateSipMediaApplicationCallInput
}

func (f *fakeChime) CreateSipMediaApplicationCallWithContext(ctx aws.Context, input *chime.CreateSipMediaApplicationCallInput, opts ...awsrequest.Option) (*chime.CreateSipMediaApplicationCallOutput, error) {
	f.calls++
	f.inputs = append(f.inputs, input)
	if f.calls <= f.failures {
		return nil, errors.New("throttled")
	}
	return &chime.CreateSipMediaApplicationCallOutput{}, nil
}

func testRequest() Request {
	return Request{
		RequestID:             "test",
		FromPhoneNumber:       "+15553334444",
		ToPhoneNumber:         "+12025550123",
		SipMediaApplicationID: "app-1",
	}
}

func TestPlace(t *testing.T) {
	t.Run("first_try_succeeds", func(t *testing.T) {
		svc := &fakeChime{}
		d := newDialer(svc, 3, false)
		d.place(context.Background(), testRequest())
		if svc.calls != 1 {
			t.Errorf("Expected one placement attempt, got %d", svc.calls)
		}
		input := svc.inputs[0]
		if aws.StringValue(input.FromPhoneNumber) != "+15553334444" {
			t.Errorf("Unexpected FromPhoneNumber %q", aws.StringValue(input.FromPhoneNumber))
		}
		if aws.StringValue(input.ToPhoneNumber) != "+12025550123" {
			t.Errorf("Unexpected ToPhoneNumber %q", aws.StringValue(input.ToPhoneNumber))
		}
		if aws.StringValue(input.SipMediaApplicationId) != "app-1" {
			t.Errorf("Unexpected SipMediaApplicationId %q", aws.StringValue(input.SipMediaApplicationId))
		}
	})
	t.Run("retries_until_success", func(t *testing.T) {
		svc := &fakeChime{failures: 2}
		d := newDialer(svc, 3, false)
		d.place(context.Background(), testRequest())
		if svc.calls != 3 {
			t.Errorf("Expected 3 attempts, got %d", svc.calls)
		}
	})
	t.Run("gives_up_after_max_tries", func(t *testing.T) {
		svc := &fakeChime{failures: 10}
		d := newDialer(svc, 3, false)
		d.place(context.Background(), testRequest())
		if svc.calls != 3 {
			t.Errorf("Expected the tries capped at 3, got %d", svc.calls)
		}
	})
}

func TestPlaceCallEnqueues(t *testing.T) {
	svc := &fakeChime{}
	d := newDialer(svc, 3, false)
	d.PlaceCall(context.Background(), "test", "+15553334444", "+12025550123", "app-1")
	select {
	case req := <-d.queue:
		if req.ToPhoneNumber != "+12025550123" || req.FromPhoneNumber != "+15553334444" {
			t.Errorf("Unexpected queued request %#v", req)
		}
		if req.SipMediaApplicationID != "app-1" {
			t.Errorf("Unexpected application id %q", req.SipMediaApplicationID)
		}
	default:
		t.Fatalf("Expected the request queued")
	}
}

func TestPlaceCallDropsWhenQueueFull(t *testing.T) {
	svc := &fakeChime{}
	d := newDialer(svc, 3, false)
	for i := 0; i < cap(d.queue); i++ {
		d.queue <- testRequest()
	}
	d.PlaceCall(context.Background(), "test", "+15553334444", "+12025550123", "app-1")
	if len(d.queue) != cap(d.queue) {
		t.Errorf("Expected the overflow request dropped, queue length %d", len(d.queue))
	}
}

func TestPlaceCallAcceptsUnparseableNumber(t *testing.T) {
	svc := &fakeChime{}
	d := newDialer(svc, 3, false)
	d.PlaceCall(context.Background(), "test", "+15553334444", "not-a-number", "app-1")
	if len(d.queue) != 1 {
		t.Errorf("Expected the request queued despite the bad number, queue length %d", len(d.queue))
	}
}
