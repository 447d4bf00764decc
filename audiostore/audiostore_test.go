package audiostore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	awsrequest "github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type fakeS3 struct {
	s3iface.S3API
	present map[string]bool
}

func (f *fakeS3) HeadObjectWithContext(ctx aws.Context, input *s3.HeadObjectInput, opts ...awsrequest.Option) (*s3.HeadObjectOutput, error) {
	if f.present[aws.StringValue(input.Key)] {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, errors.New("not found")
}

func TestVerifyAssets(t *testing.T) {
	ch := &Checker{svc: &fakeS3{present: map[string]bool{
		"hello-goodbye.wav": true,
	}}}
	t.Run("all_present", func(t *testing.T) {
		missing := ch.VerifyAssets(context.Background(), "wav-bucket", []string{"hello-goodbye.wav"})
		if len(missing) != 0 {
			t.Errorf("Expected no missing assets, got %v", missing)
		}
	})
	t.Run("reports_missing", func(t *testing.T) {
		missing := ch.VerifyAssets(context.Background(), "wav-bucket", []string{"hello-goodbye.wav", "ringback.wav"})
		if len(missing) != 1 || missing[0] != "ringback.wav" {
			t.Errorf("Expected ringback.wav reported missing, got %v", missing)
		}
	})
}
