// Package paramstore looks up named configuration values from SSM
// Parameter Store with a bounded timeout and a small cache, so a slow
// or unavailable parameter source can only delay one response by the
// configured timeout.
package paramstore

import (
	"context"
	"sync"
	"time"

	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
)

type cachedParam struct {
	value   string
	fetched time.Time
}

// Store fetches parameters by name
type Store struct {
	svc     ssmiface.SSMAPI
	timeout time.Duration
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cachedParam
}

// NewStore returns a Store backed by SSM in the given region
func NewStore(region string, timeout time.Duration, ttl time.Duration) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}
	return newStore(ssm.New(sess), timeout, ttl), nil
}

func newStore(svc ssmiface.SSMAPI, timeout time.Duration, ttl time.Duration) *Store {
	return &Store{
		svc:     svc,
		timeout: timeout,
		ttl:     ttl,
		cache:   make(map[string]cachedParam),
	}
}

// Get returns the parameter value. A fresh cached value is served
// without a network call; on lookup failure a stale cached value is
// served if one exists.
func (s *Store) Get(ctx context.Context, requestID string, name string) (string, error) {
	s.mu.Lock()
	cached, ok := s.cache[name]
	s.mu.Unlock()
	if ok && time.Since(cached.fetched) < s.ttl {
		return cached.value, nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	out, err := s.svc.GetParameterWithContext(lookupCtx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if ok {
			ymlogger.LogErrorf(requestID, "Parameter lookup failed for [%s], serving stale value. Error: [%#v]", name, err)
			return cached.value, nil
		}
		ymlogger.LogErrorf(requestID, "Parameter lookup failed for [%s]. Error: [%#v]", name, err)
		return "", err
	}
	value := aws.StringValue(out.Parameter.Value)
	s.mu.Lock()
	s.cache[name] = cachedParam{value: value, fetched: time.Now()}
	s.mu.Unlock()
	return value, nil
}
