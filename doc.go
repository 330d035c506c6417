// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lens provides composable read/write accessors over deeply
// nested immutable state in Go.
//
// The core type [Lens] pairs a pure getter with a pure setter that
// performs structurally-shared updates: only containers along the
// written path are copied, every sibling sub-value keeps its prior
// identity. On top of the algebra, a lazily-expanded traversal graph
// of [Node] values turns key-path access into lens composition without
// the caller writing any accessor code, and a read-only [View] layer
// mirrors concrete snapshots back onto the nodes that address them.
//
// # Design Philosophy
//
// lens provides:
//   - A minimal, law-abiding combinator set ([Refine], [Compose],
//     [Coalesce]) over pure Get/Set pairs
//   - Identity-stable traversal: one live [Node] per reachable
//     key-path for the lifetime of a root, usable directly as
//     memoization and list keys by a host runtime
//   - A declarative re-render calculus ([Decide]) deciding when a
//     consumer's materialized view should advance
//   - A store-shaped adapter ([Connection]) exposing asynchronously
//     produced values through the same interface, with
//     pending-until-ready semantics consumed by an external scheduler
//
// # Lens Algebra
//
// Minimal operations:
//
//   - [Identity]: Focus a subject on itself
//   - [Refine]: Post-compose an extractor/updater pair
//   - [Compose]: Chain two lenses
//
// Derived operations:
//
//   - [Coalesce]: Read a possibly-absent focus with a fallback
//   - [Modify]: Write the result of a function of the focus
//   - [Prop], [Index]: Dynamic member access over the [Value] domain
//     with structurally-sharing shallow-copy setters
//
// # Root Store
//
// A [Store] holds one immutable root value. [Store.SetSnapshot]
// replaces it wholesale and synchronously notifies listeners in
// subscription order — one notification pass per replacement, no
// queuing or batching. [Update] composes a read, a lens modification,
// and a replacement into one synchronous cycle.
//
// # Dynamic Traversal
//
// [New] creates a root [Node] over a fresh store. [Node.Prop] and
// [Node.Index] build children on first access and memoize them
// forever, so traversing the same path twice yields the same pointer.
// [Node.Use] collapses a node against the current snapshot, returning
// a materialized value and an update function. Bulk enumeration of a
// node is deliberately degraded: [Node.Members] returns only children
// that were already traversed and warns once per tree, because a
// copied node loses all live traversal behavior.
//
// # Materialized Views
//
// A [View] is an ephemeral read-only mirror of one composite snapshot
// value. Member access returns further views, [View.Raw] returns the
// underlying value verbatim, and [View.ToLens] returns the identical
// node that pure traversal from the root would produce. Each node
// caches the view of the last value identity it materialized, so
// sub-trees untouched by an update keep their view instances.
//
// # Should-Update Specs
//
// [Decide] evaluates the [ShouldUpdate] grammar — booleans,
// [Predicate] functions, key sets, and [Keyed] nested mappings —
// against a previous and next value, short-circuiting on the first
// difference. Keyed mappings distribute over sequence elements, and a
// sequence length change always counts as a difference.
//
// # Connections
//
// [NewConnection] wraps an async-producing procedure behind a private
// [Store] that starts pending. [Node.Connect] keys resources by
// key-path plus serialized input: equal keys share one instance,
// refcounted by [Handle]; releasing the last handle tears the resource
// down exactly once. Reading a pending resource yields a Pending
// [Result] — the host runtime maps it onto its own suspension
// primitive.
//
// # Concurrency
//
// The package is single-threaded and cooperative. Every state
// transition is either pure or serialized through one store's
// replace-and-notify pair, which runs to completion before returning,
// so listeners never observe a partial update. Snapshot values are
// replaced, never mutated; callers must treat them as immutable.
//
// # Example
//
//	root := lens.New(map[string]any{
//		"todos": []any{
//			map[string]any{"title": "write docs", "completed": false},
//		},
//	})
//
//	todos := root.Prop("todos")
//	res, update := todos.Use(lens.Keyed{"completed": true})
//	view, _ := res.Get()
//
//	update(func(v lens.Value) lens.Value {
//		return lens.Modify(
//			lens.Prop(lens.Index(lens.Identity[lens.Value](), 0), "completed"),
//			v,
//			func(lens.Value) lens.Value { return true },
//		)
//	})
//	// the next Use advances: element 0's completed member changed
//	_ = view
package lens
