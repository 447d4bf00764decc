// Package audiostore checks that the audio assets the flows reference
// actually exist in the configured bucket, so a missing wav file shows
// up at startup instead of mid-call.
package audiostore

import (
	"context"

	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Checker verifies audio assets in bucket storage
type Checker struct {
	svc s3iface.S3API
}

// NewChecker returns a Checker for the given region
func NewChecker(region string) (*Checker, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}
	return &Checker{svc: s3.New(sess)}, nil
}

// VerifyAssets heads every key and returns the ones that are missing
// or unreadable. Failures are logged; the caller decides whether a
// missing asset is fatal.
func (ch *Checker) VerifyAssets(ctx context.Context, bucket string, keys []string) []string {
	var missing []string
	for _, key := range keys {
		_, err := ch.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			ymlogger.LogErrorf("AudioStore", "Asset [%s/%s] is not readable. Error: [%#v]", bucket, key, err)
			missing = append(missing, key)
		}
	}
	return missing
}
