package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSchema counts loads and blocks until released.
type countingSchema struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (s *countingSchema) LoadColumns(ctx context.Context, owner, table string) (map[string]ColumnDescriptor, error) {
	s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return map[string]ColumnDescriptor{"ID": {Name: "ID", DataType: "NUMBER"}}, nil
}

func TestSchemaCache_LoadsOnceConcurrently(t *testing.T) {
	src := &countingSchema{release: make(chan struct{})}
	cache := NewSchemaCache(src, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cols, err := cache.Columns(context.Background(), "own", "tb")
			assert.NoError(t, err)
			assert.Contains(t, cols, "ID")
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestSchemaCache_KeyIsCaseInsensitive(t *testing.T) {
	src := &countingSchema{}
	cache := NewSchemaCache(src, 0)

	_, err := cache.Columns(context.Background(), "own", "tb")
	require.NoError(t, err)
	_, err = cache.Columns(context.Background(), " OWN ", "TB")
	require.NoError(t, err)

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestSchemaCache_CachesErrors(t *testing.T) {
	src := &countingSchema{err: &NotFoundError{Resource: "table", Name: "OWN.TB"}}
	cache := NewSchemaCache(src, 0)

	for i := 0; i < 3; i++ {
		_, err := cache.Columns(context.Background(), "OWN", "TB")
		assert.True(t, errors.Is(err, ErrNotFound))
	}
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestSchemaCache_CancelledLoadNotCached(t *testing.T) {
	src := &countingSchema{err: context.Canceled}
	cache := NewSchemaCache(src, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Columns(ctx, "OWN", "TB")
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

// gatedSchema blocks each load until released or until the load context ends.
type gatedSchema struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *gatedSchema) LoadColumns(ctx context.Context, owner, table string) (map[string]ColumnDescriptor, error) {
	s.calls.Add(1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.release:
	}
	return map[string]ColumnDescriptor{"ID": {Name: "ID", DataType: "NUMBER"}}, nil
}

func TestSchemaCache_CallerCancellationIsNotShared(t *testing.T) {
	src := &gatedSchema{release: make(chan struct{})}
	cache := NewSchemaCache(src, time.Minute)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := cache.Columns(ctxA, "OWN", "TB")
		errA <- err
	}()
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		cols map[string]ColumnDescriptor
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		cols, err := cache.Columns(context.Background(), "OWN", "TB")
		resB <- result{cols, err}
	}()

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	time.Sleep(10 * time.Millisecond)
	close(src.release)

	b := <-resB
	require.NoError(t, b.err)
	assert.Contains(t, b.cols, "ID")
	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestSchemaCache_TTLAndInvalidate(t *testing.T) {
	src := &countingSchema{}
	cache := NewSchemaCache(src, time.Millisecond)

	_, _ = cache.Columns(context.Background(), "OWN", "TB")
	time.Sleep(5 * time.Millisecond)
	_, _ = cache.Columns(context.Background(), "OWN", "TB")
	assert.Equal(t, int32(2), src.calls.Load())

	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())
}
