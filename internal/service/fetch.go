package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/subfinder-client/internal/adapter"
)

// Fetch is the handle of a single in-flight API call. It is safe for
// concurrent use. Data and Err are zero until Done is closed.
type Fetch[T any] struct {
	mu      sync.RWMutex
	data    T
	err     *adapter.ResponseError
	pending bool

	done chan struct{}
}

func newFetch[T any]() *Fetch[T] {
	return &Fetch[T]{
		pending: true,
		done:    make(chan struct{}),
	}
}

// Data returns the decoded response. It stays the zero value when the call
// failed.
func (f *Fetch[T]) Data() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}

// Err returns the failure of the call, or nil.
func (f *Fetch[T]) Err() *adapter.ResponseError {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.err
}

// Pending reports whether the call is still running.
func (f *Fetch[T]) Pending() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pending
}

// Done is closed once the call has finished and error handlers have run.
func (f *Fetch[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the call finishes or ctx is done. The returned error is
// either ctx.Err() or the call's *adapter.ResponseError.
func (f *Fetch[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.err != nil {
		return f.data, f.err
	}
	return f.data, nil
}

func (f *Fetch[T]) resolve(data T, err *adapter.ResponseError) {
	f.mu.Lock()
	if err == nil {
		f.data = data
	}
	f.err = err
	f.pending = false
	f.mu.Unlock()

	close(f.done)
}

// FetchOption customises a single call.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	onResponseError func(*adapter.ResponseError)
}

// WithOnResponseError registers handler to run after the built-in error
// notification. It is called exactly once per failed call and never on
// success.
func WithOnResponseError(handler func(*adapter.ResponseError)) FetchOption {
	return func(o *fetchOptions) {
		o.onResponseError = handler
	}
}

func collectOptions(opts []FetchOption) fetchOptions {
	var o fetchOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
