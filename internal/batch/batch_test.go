package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll_PreservesOrder(t *testing.T) {
	ids := []string{"5", "1", "4", "2", "3"}
	fetch := func(_ context.Context, id string) (string, error) {
		n, _ := strconv.Atoi(id)
		time.Sleep(time.Duration(6-n) * time.Millisecond)
		return "item-" + id, nil
	}

	results, err := FetchAll(context.Background(), ids, 3, fetch)

	require.NoError(t, err)
	assert.Equal(t, []string{"item-5", "item-1", "item-4", "item-2", "item-3"}, results)
}

func TestFetchAll_Empty(t *testing.T) {
	called := false
	results, err := FetchAll(context.Background(), nil, 2, func(context.Context, string) (int, error) {
		called = true
		return 0, nil
	})

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.False(t, called)
}

func TestFetchAll_FirstErrorByIndex(t *testing.T) {
	ids := []string{"ok", "bad-1", "bad-2"}
	fetch := func(_ context.Context, id string) (string, error) {
		if id == "ok" {
			return id, nil
		}
		return "", fmt.Errorf("failed %s", id)
	}

	results, err := FetchAll(context.Background(), ids, 0, fetch)

	assert.Nil(t, results)
	assert.EqualError(t, err, "failed bad-1")
}

func TestFetchAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int32

	_, err := FetchAll(ctx, []string{"a", "b"}, 1, func(context.Context, string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
