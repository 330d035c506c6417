// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import "slices"

// Mutable root store.
// The store is the only shared mutable resource in this package: it
// holds one immutable root value that is always replaced wholesale,
// never mutated in place, so readers never observe a torn value.

type subscription struct {
	id int
	fn func()
}

// Store holds the current immutable root value and an ordered listener
// list. Every state transition is synchronous: SetSnapshot replaces the
// value and runs one notification pass to completion before returning.
// There is no internal queuing, batching, or locking — a store belongs
// to one cooperative caller at a time.
type Store[S any] struct {
	status  status
	value   S
	err     error
	nextSub int
	subs    []subscription
}

// NewStore creates a store holding initial, in the ready state.
func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{status: statusReady, value: initial}
}

// NewPendingStore creates a store that has not produced a value yet.
// Connection-private stores start in this state; the first SetSnapshot
// moves the store to ready.
func NewPendingStore[S any]() *Store[S] {
	return &Store[S]{}
}

// Snapshot returns the current root value.
// Callers must never mutate the returned value in place.
// Panics if the store has never been set — use Read for a tri-state
// answer that cannot panic.
func (st *Store[S]) Snapshot() S {
	if st.status != statusReady {
		panic("lens: snapshot of a store that has no value")
	}
	return st.value
}

// Read returns the store's state as a Result: Pending before the first
// SetSnapshot, Failed after Fail, Ready otherwise.
func (st *Store[S]) Read() Result[S] {
	switch st.status {
	case statusFailed:
		return Failed[S](st.err)
	case statusPending:
		return Pending[S]()
	default:
		return Ready(st.value)
	}
}

// SetSnapshot replaces the stored value unconditionally (no merge),
// moves the store to ready, then synchronously invokes every
// subscribed listener in subscription order.
func (st *Store[S]) SetSnapshot(next S) {
	st.value = next
	st.err = nil
	st.status = statusReady
	st.notify()
}

// Fail records a production error. Subsequent Read calls yield Failed
// until a SetSnapshot recovers the store to ready. Notifies listeners.
func (st *Store[S]) Fail(err error) {
	st.err = err
	st.status = statusFailed
	st.notify()
}

// Subscribe registers a listener invoked after every snapshot
// replacement. The returned cancel function is idempotent.
func (st *Store[S]) Subscribe(fn func()) (cancel func()) {
	id := st.nextSub
	st.nextSub++
	st.subs = append(st.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range st.subs {
			if s.id == id {
				st.subs = slices.Delete(st.subs, i, i+1)
				return
			}
		}
	}
}

// notify runs one notification pass over a copy of the listener list,
// so listeners may subscribe or cancel reentrantly.
func (st *Store[S]) notify() {
	for _, s := range slices.Clone(st.subs) {
		s.fn()
	}
}

// Update replaces the store's snapshot with the result of modifying the
// lens focus: one synchronous read → modify → replace → notify cycle
// that completes before returning.
//
// Update is a free function because Go methods cannot introduce type
// parameters.
func Update[S, A any](st *Store[S], l Lens[S, A], f func(A) A) {
	st.SetSnapshot(Modify(l, st.Snapshot(), f))
}
