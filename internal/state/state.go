// Package state holds the tagged result type shared by the search pipeline
// and the library mutations, plus an observable container for it.
package state

import (
	"context"
	"encoding/json"
	"sync"
)

type Status uint8

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	// StatusEmpty marks a mutation that succeeded but affected nothing
	// (zero rows). It is not an error and must not be shown as one.
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type Value[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data,omitempty"`
	Err    string `json:"error,omitempty"`
}

func Idle[T any]() Value[T] { return Value[T]{Status: StatusIdle} }

func Loading[T any]() Value[T] { return Value[T]{Status: StatusLoading} }

func Success[T any](v T) Value[T] { return Value[T]{Status: StatusSuccess, Data: v} }

func Empty[T any]() Value[T] { return Value[T]{Status: StatusEmpty} }

func Fail[T any](msg string) Value[T] {
	return Value[T]{Status: StatusFailed, Err: msg}
}

func (v Value[T]) IsSuccess() bool { return v.Status == StatusSuccess }
func (v Value[T]) IsFailed() bool  { return v.Status == StatusFailed }

// Container is a latest-value holder. Watchers receive the newest value after
// each Set; a slow watcher skips intermediate values rather than blocking the
// writer.
type Container[T any] struct {
	mu      sync.Mutex
	current Value[T]
	subs    map[chan Value[T]]struct{}
}

func NewContainer[T any]() *Container[T] {
	return &Container[T]{
		current: Idle[T](),
		subs:    make(map[chan Value[T]]struct{}),
	}
}

func (c *Container[T]) Get() Value[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Container[T]) Set(v Value[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = v
	for ch := range c.subs {
		// drain a stale value so the send below cannot block
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Watch returns a channel carrying the current value followed by every
// subsequent update (latest-wins). The subscription is dropped when ctx is
// done.
func (c *Container[T]) Watch(ctx context.Context) <-chan Value[T] {
	ch := make(chan Value[T], 1)
	c.mu.Lock()
	c.subs[ch] = struct{}{}
	ch <- c.current
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, ch)
		c.mu.Unlock()
	}()
	return ch
}
