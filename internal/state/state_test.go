package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readmio/bookshelf-service/internal/state"
)

func TestValue_Constructors(t *testing.T) {
	require.Equal(t, state.StatusIdle, state.Idle[int]().Status)
	require.Equal(t, state.StatusLoading, state.Loading[int]().Status)
	require.Equal(t, state.StatusEmpty, state.Empty[int]().Status)

	ok := state.Success(42)
	require.True(t, ok.IsSuccess())
	require.Equal(t, 42, ok.Data)

	failed := state.Fail[int]("boom")
	require.True(t, failed.IsFailed())
	require.Equal(t, "boom", failed.Err)
}

func TestContainer_GetSet(t *testing.T) {
	c := state.NewContainer[string]()
	require.Equal(t, state.StatusIdle, c.Get().Status)

	c.Set(state.Success("hello"))
	got := c.Get()
	require.True(t, got.IsSuccess())
	require.Equal(t, "hello", got.Data)
}

func TestContainer_WatchDeliversCurrentThenUpdates(t *testing.T) {
	c := state.NewContainer[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ch := c.Watch(ctx)
	first := <-ch
	require.Equal(t, state.StatusIdle, first.Status)

	c.Set(state.Success(1))
	got := <-ch
	require.True(t, got.IsSuccess())
	require.Equal(t, 1, got.Data)
}

func TestContainer_SlowWatcherSeesLatestValue(t *testing.T) {
	c := state.NewContainer[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ch := c.Watch(ctx)
	<-ch // drain initial Idle

	// the watcher never reads between these; only the last must be seen
	c.Set(state.Success(1))
	c.Set(state.Success(2))
	c.Set(state.Success(3))

	got := <-ch
	require.Equal(t, 3, got.Data)
}
