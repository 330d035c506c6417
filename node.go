// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import (
	"fmt"
	"log"
)

// Dynamic traversal layer.
// A Node addresses one key-path of a root store through the lens
// algebra. Children are built on first access and memoized forever, so
// the node graph is an infinite lazily-expanded tree with exactly one
// live node per reachable key-path for the lifetime of the root.

// root owns everything scoped to one root lens: the store, the node id
// counter, and the connection resource table. It is reached only
// through its nodes; independently created roots share nothing.
type root struct {
	store  *Store[Value]
	conns  map[resourceKey]*resource
	nodes  int
	warn   func(format string, args ...any)
	warned bool
}

func (r *root) mintID() int {
	id := r.nodes
	r.nodes++
	return id
}

// New creates a root lens over a fresh store holding initial.
// The returned node is the root of the traversal graph; every
// descendant obtained through Prop and Index is memoized under it.
func New(initial Value) *Node {
	return newRoot(NewStore[Value](initial))
}

// newRoot builds a traversal graph over an existing store.
func newRoot(store *Store[Value]) *Node {
	r := &root{store: store, warn: log.Printf}
	return &Node{root: r, id: r.mintID(), path: "$", lens: Identity[Value]()}
}

// Node is one point of the traversal graph, identified by its key-path
// from the root. Node identity is stable: traversing the same path any
// number of times yields the same pointer, which makes nodes usable as
// memoization and list-rendering keys by a host runtime.
type Node struct {
	root *root
	id   int
	path string
	lens Lens[Value, Value]

	props map[string]*Node
	elems map[int]*Node

	// last collapsed value, pinned between significant changes
	last    Value
	hasLast bool

	// view of the last value identity materialized at this path
	view *View
}

// Prop returns the child node focused on the named member.
// The child is created on first access and returned from the memo
// table thereafter.
func (n *Node) Prop(name string) *Node {
	if c, ok := n.props[name]; ok {
		return c
	}
	c := &Node{
		root: n.root,
		id:   n.root.mintID(),
		path: n.path + "." + name,
		lens: Prop(n.lens, name),
	}
	if n.props == nil {
		n.props = make(map[string]*Node)
	}
	n.props[name] = c
	return c
}

// Index returns the child node focused on the i-th element.
func (n *Node) Index(i int) *Node {
	if c, ok := n.elems[i]; ok {
		return c
	}
	c := &Node{
		root: n.root,
		id:   n.root.mintID(),
		path: fmt.Sprintf("%s[%d]", n.path, i),
		lens: Index(n.lens, i),
	}
	if n.elems == nil {
		n.elems = make(map[int]*Node)
	}
	n.elems[i] = c
	return c
}

// Key returns the stable display key derived from the node's key-path,
// e.g. "$", "$.todos", "$.todos[0]".
func (n *Node) Key() string { return n.path }

// UpdateFunc applies an updater to a node's focus: it reads the current
// snapshot, passes the focus value to the updater, writes the result
// back through the lens, and replaces the store's snapshot.
type UpdateFunc func(updater func(Value) Value)

// Use is the collapse operation binding this node to its store.
//
// It reads the store (a pending or failed store propagates as the
// corresponding Result), applies the node's lens, and consults Decide
// against the previously exposed value to choose whether the consumer
// advances to the new value or stays pinned at the previous one. The
// first invocation always advances. The chosen value is returned
// materialized: composites as a *View, leaves unchanged.
//
// A nil spec means true (advance on identity change). The returned
// update function panics if invoked while the store is still pending.
func (n *Node) Use(spec ShouldUpdate) (Result[Value], UpdateFunc) {
	update := func(f func(Value) Value) { Update(n.root.store, n.lens, f) }
	res := n.root.store.Read()
	s, ok := res.Get()
	if !ok {
		return res, update
	}
	next := n.lens.Get(s)
	if n.hasLast && !Decide(n.last, next, spec) {
		next = n.last
	} else {
		n.last = next
		n.hasLast = true
	}
	return Ready(materialize(next, n)), update
}

// Members returns the already-traversed children of this node, keyed by
// display step ("name" or "[i]").
//
// This is a deliberate guardrail, not a traversal operation: the result
// is a degraded static snapshot containing only children that were
// individually accessed before, with none of the live lazy-expansion
// behavior. The first call on a root's tree emits a warning, because
// code that copies a node into a plain structure silently breaks every
// downstream access.
func (n *Node) Members() map[string]*Node {
	if !n.root.warned {
		n.root.warned = true
		n.root.warn("lens: enumerating node %s yields only previously traversed children; a copied node has no live traversal behavior", n.path)
	}
	out := make(map[string]*Node, len(n.props)+len(n.elems))
	for name, c := range n.props {
		out[name] = c
	}
	for i, c := range n.elems {
		out[fmt.Sprintf("[%d]", i)] = c
	}
	return out
}

// OnWarn redirects the diagnostic sink for this node's whole tree.
// The default sink is log.Printf.
func (n *Node) OnWarn(fn func(format string, args ...any)) {
	n.root.warn = fn
}
