package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btd_party/internal/app"
	"btd_party/internal/config"
)

// flakyStore fails the first failures calls of each operation
type flakyStore struct {
	failures   int
	loadCalls  int
	saveCalls  int
	saved      []app.Survivor
	closeCalls int
}

func (s *flakyStore) Load(ctx context.Context) ([]app.Survivor, error) {
	s.loadCalls++
	if s.loadCalls <= s.failures {
		return nil, errors.New("connection reset")
	}
	return s.saved, nil
}

func (s *flakyStore) Save(ctx context.Context, survivors []app.Survivor) error {
	s.saveCalls++
	if s.saveCalls <= s.failures {
		return errors.New("connection reset")
	}
	s.saved = survivors
	return nil
}

func (s *flakyStore) Close() error {
	s.closeCalls++
	return nil
}

func fastResilience(attempts int) config.ResilienceConfig {
	policy := config.RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  2.0,
		Timeout:     time.Second,
	}
	return config.ResilienceConfig{StoreRead: policy, StoreWrite: policy}
}

func TestRetryingStore_RecoversFromTransientErrors(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{failures: 2}
	store := NewRetryingStore(inner, "flaky", fastResilience(3))

	require.NoError(t, store.Save(ctx, []app.Survivor{{Attack: 9}}))
	assert.Equal(t, 3, inner.saveCalls)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []app.Survivor{{Attack: 9}}, loaded)
	assert.Equal(t, 3, inner.loadCalls)
}

func TestRetryingStore_GivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyStore{failures: 10}
	store := NewRetryingStore(inner, "flaky", fastResilience(2))

	_, err := store.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, 2, inner.loadCalls)
}

func TestRetryingStore_StopsOnCancelledContext(t *testing.T) {
	inner := &flakyStore{failures: 10}
	store := NewRetryingStore(inner, "flaky", fastResilience(5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Save(ctx, nil)

	require.Error(t, err)
	assert.Equal(t, 1, inner.saveCalls)
}

func TestRetryingStore_Close(t *testing.T) {
	inner := &flakyStore{}
	require.NoError(t, NewRetryingStore(inner, "flaky", fastResilience(1)).Close())
	assert.Equal(t, 1, inner.closeCalls)

	fileStore := NewRetryingStore(NewFileStore("unused.json"), "file", fastResilience(1))
	assert.NoError(t, fileStore.Close())
}
