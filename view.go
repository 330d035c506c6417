// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import "slices"

// Value materialization.
// materialize turns a concrete snapshot sub-value and its addressing
// node into a read-only recursive view. Each node caches the view of
// the last value identity it materialized — one node addresses one
// sub-value per snapshot — so a sub-value untouched by any number of
// structurally-shared updates keeps its view instance, and the cached
// view is replaced the moment the value identity at that path changes.
// The cache lives on the node, never attached to the data itself.

// View is a read-only recursive mirror of one composite snapshot value,
// paired with the lens node addressing it. A view exists purely to let
// the caller read data and, when needed, jump back to the writable lens
// for the same path; it has no mutating surface.
type View struct {
	node  *Node
	value Value
}

// Prop returns the materialized value of the named member: a *View for
// composites, the raw value for leaves.
func (v *View) Prop(name string) Value {
	return materialize(getProp(v.value, name), v.node.Prop(name))
}

// Index returns the materialized value of the i-th element.
func (v *View) Index(i int) Value {
	return materialize(getIndex(v.value, i), v.node.Index(i))
}

// Len returns the number of elements (sequences) or members (objects).
func (v *View) Len() int {
	switch c := v.value.(type) {
	case []any:
		return len(c)
	case map[string]any:
		return len(c)
	}
	return 0
}

// Keys returns the object's member keys in sorted order, or nil for a
// sequence. This enumerates snapshot data, not traversal nodes, and is
// therefore unguarded.
func (v *View) Keys() []string {
	m, ok := v.value.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Raw returns the underlying snapshot value verbatim.
// Callers must never mutate it in place.
func (v *View) Raw() Value { return v.value }

// ToLens returns the lens node addressing this view's path. The result
// is reference-equal to the node obtained by pure traversal from the
// root, so a host runtime may use it directly as a memoization key.
func (v *View) ToLens() *Node { return v.node }

// materialize returns v unchanged for leaves, or the view of a
// composite value addressed by n. The node's cached view is reused
// while the value identity at its path is unchanged and replaced
// otherwise, so a stale view never outlives the next materialization
// of its path.
func materialize(v Value, n *Node) Value {
	switch v.(type) {
	case map[string]any, []any:
	default:
		return v
	}
	if n.view != nil && same(n.view.value, v) {
		return n.view
	}
	n.view = &View{node: n, value: v}
	return n.view
}
