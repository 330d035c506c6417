// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import (
	"encoding/json"
	"fmt"
)

// Connection adapter.
// A Connection standardizes how an asynchronously produced value is
// exposed through the lens interface — not how it is fetched. Each
// distinct (connection, key-path, serialized input) triple owns one
// refcounted resource with a private store that starts pending; the
// host scheduler consumes the Pending result until the producer sets
// the first snapshot.

// Connection wraps an arbitrary async-producing procedure behind the
// store-shaped interface. create receives the resource's private
// pending store and the input; it may return a teardown invoked when
// the last referencing consumer detaches.
type Connection struct {
	create func(st *Store[Value], input Value) (teardown func())
}

// NewConnection creates a connection descriptor from a creation
// procedure. The procedure typically starts the asynchronous work and
// calls SetSnapshot (or Fail) on the private store when it resolves.
func NewConnection(create func(st *Store[Value], input Value) (teardown func())) *Connection {
	return &Connection{create: create}
}

type resourceKey struct {
	conn  *Connection
	path  string
	input string
}

// resource lifecycle: uninitialized → pending (create invoked, no
// value yet) → ready (first SetSnapshot) → torn down (teardown invoked
// at most once, on loss of the last referencing consumer).
type resource struct {
	key      resourceKey
	store    *Store[Value]
	node     *Node
	refs     int
	teardown func()
	down     bool
}

// Connect attaches a consumer to the resource addressed by this node's
// key-path and the given input. The first access with a given input
// invokes the connection's creation procedure; while the same input
// recurs at the same path, every consumer shares one resource instance
// and one private store. A differing input is a different resource.
//
// The input must be serializable with encoding/json; it becomes part
// of the resource's cache key. Panics otherwise.
func (n *Node) Connect(c *Connection, input Value) *Handle {
	raw, err := json.Marshal(input)
	if err != nil {
		panic(fmt.Sprintf("lens: connection input at %s is not serializable: %v", n.path, err))
	}
	r := n.root
	key := resourceKey{conn: c, path: n.path, input: string(raw)}
	res, ok := r.conns[key]
	if !ok {
		res = &resource{key: key, store: NewPendingStore[Value]()}
		if r.conns == nil {
			r.conns = make(map[resourceKey]*resource)
		}
		r.conns[key] = res
		res.teardown = c.create(res.store, input)
	}
	res.refs++
	return &Handle{owner: r, res: res}
}

// Handle is one consumer's attachment to a connection resource.
// Handles are affine: Release may be called at most once.
type Handle struct {
	owner    *root
	res      *resource
	released bool
}

// Node returns the root lens node over the resource's private store.
// All handles on the same resource share one traversal graph, so node
// identity and view caching behave exactly as they do on a root lens;
// Use yields Pending until the producer sets the first snapshot.
// Panics if the handle has been released.
func (h *Handle) Node() *Node {
	if h.released {
		panic("lens: connection handle used after release")
	}
	if h.res.node == nil {
		h.res.node = newRoot(h.res.store)
	}
	return h.res.node
}

// Store returns the resource's private store, shared by every handle on
// the same resource. This is the producer-side surface.
// Panics if the handle has been released.
func (h *Handle) Store() *Store[Value] {
	if h.released {
		panic("lens: connection handle used after release")
	}
	return h.res.store
}

// Release detaches this consumer. Releasing the last consumer removes
// the resource from the cache and invokes its teardown exactly once.
// Panics if the handle has already been released.
func (h *Handle) Release() {
	if h.released {
		panic("lens: connection handle released twice")
	}
	h.released = true
	h.res.refs--
	if h.res.refs > 0 {
		return
	}
	delete(h.owner.conns, h.res.key)
	if h.res.teardown != nil && !h.res.down {
		h.res.down = true
		h.res.teardown()
	}
}
