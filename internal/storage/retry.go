package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"btd_party/internal/app"
	"btd_party/internal/config"
)

// RetryingStore retries a remote store's Load and Save with exponential backoff
type RetryingStore struct {
	store RosterStore
	name  string
	read  config.RetryConfig
	write config.RetryConfig
}

// NewRetryingStore wraps store. name only appears in log lines.
func NewRetryingStore(store RosterStore, name string, resilience config.ResilienceConfig) *RetryingStore {
	return &RetryingStore{
		store: store,
		name:  name,
		read:  resilience.StoreRead,
		write: resilience.StoreWrite,
	}
}

// Load retries the wrapped Load until it succeeds or the read policy gives up
func (s *RetryingStore) Load(ctx context.Context) ([]app.Survivor, error) {
	var survivors []app.Survivor
	err := retry(ctx, s.read, s.name+" load", func(ctx context.Context) error {
		loaded, err := s.store.Load(ctx)
		if err != nil {
			return err
		}
		survivors = loaded
		return nil
	})
	return survivors, err
}

// Save retries the wrapped Save until it succeeds or the write policy gives up
func (s *RetryingStore) Save(ctx context.Context, survivors []app.Survivor) error {
	return retry(ctx, s.write, s.name+" save", func(ctx context.Context) error {
		return s.store.Save(ctx, survivors)
	})
}

// Close closes the wrapped store when it holds a connection
func (s *RetryingStore) Close() error {
	if closer, ok := s.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// retry runs op under policy. Each attempt gets its own timeout; context
// cancellation from the caller stops retrying immediately.
func retry(ctx context.Context, policy config.RetryConfig, operation string, op func(context.Context) error) error {
	b := newBackOff(policy)
	attempt := 0

	return backoff.RetryNotify(func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, policy.Timeout)
		defer cancel()

		err := op(attemptCtx)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("Roster store operation failed, retrying")
	})
}

func newBackOff(policy config.RetryConfig) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = policy.InitialWait
	exp.MaxInterval = policy.MaxWait
	exp.Multiplier = policy.Multiplier
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	retries := policy.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(exp, uint64(retries))
}
