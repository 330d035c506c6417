// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

type status uint8

const (
	statusPending status = iota
	statusReady
	statusFailed
)

// Result represents the outcome of reading a possibly-asynchronous
// focus: Pending (no value has been produced yet), Ready (value), or
// Failed (the producer reported an error).
//
// Result is the sole integration point with an external scheduler:
// this package only produces the tri-state, and the host runtime is
// responsible for mapping Pending onto its own suspension primitive.
type Result[A any] struct {
	status status
	value  A
	err    error
}

// Pending creates a Result for a focus that has not produced a value.
func Pending[A any]() Result[A] {
	return Result[A]{status: statusPending}
}

// Ready creates a Result carrying a produced value.
func Ready[A any](v A) Result[A] {
	return Result[A]{status: statusReady, value: v}
}

// Failed creates a Result carrying a production error.
func Failed[A any](err error) Result[A] {
	return Result[A]{status: statusFailed, err: err}
}

// IsPending returns true if no value has been produced yet.
func (r Result[A]) IsPending() bool { return r.status == statusPending }

// IsReady returns true if a value is available.
func (r Result[A]) IsReady() bool { return r.status == statusReady }

// IsFailed returns true if the producer reported an error.
func (r Result[A]) IsFailed() bool { return r.status == statusFailed }

// Get returns the value and true if ready, or the zero value and false.
func (r Result[A]) Get() (A, bool) {
	if r.status != statusReady {
		var zero A
		return zero, false
	}
	return r.value, true
}

// Err returns the production error, or nil if the result is not Failed.
func (r Result[A]) Err() error { return r.err }
