// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import "fmt"

// Dynamic data domain for the traversal layer.
// Composite values are map[string]any (objects) and []any (sequences);
// everything else is a leaf. Prop and Index specialize Refine with
// structurally-sharing shallow-copy setters.

// Value is the dynamic data domain: objects are map[string]any,
// sequences are []any, all other values are leaves.
type Value = any

// Prop focuses the named member of an object-valued lens.
//
// Reads of an absent member or a non-object container yield nil.
// The setter shallow-copies the object and overwrites only key, so
// every sibling member keeps its prior identity; writing a key the
// object does not yet have adds it. Writing into a non-object
// container panics — the path no longer exists in the current subject.
func Prop[S any](l Lens[S, Value], key string) Lens[S, Value] {
	return Refine(l,
		func(container Value) Value { return getProp(container, key) },
		func(container, v Value) Value { return setProp(container, key, v) },
	)
}

// Index focuses the i-th element of a sequence-valued lens.
//
// Reads out of range or of a non-sequence container yield nil.
// The setter copies the sequence and overwrites only element i;
// writing out of range or into a non-sequence container panics.
func Index[S any](l Lens[S, Value], i int) Lens[S, Value] {
	return Refine(l,
		func(container Value) Value { return getIndex(container, i) },
		func(container, v Value) Value { return setIndex(container, i, v) },
	)
}

func getProp(container Value, key string) Value {
	m, ok := container.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

func setProp(container Value, key string, v Value) Value {
	m, ok := container.(map[string]any)
	if !ok {
		panic(fmt.Sprintf("lens: set %q on non-object value %T", key, container))
	}
	next := make(map[string]any, len(m)+1)
	for k, mv := range m {
		next[k] = mv
	}
	next[key] = v
	return next
}

func getIndex(container Value, i int) Value {
	s, ok := container.([]any)
	if !ok || i < 0 || i >= len(s) {
		return nil
	}
	return s[i]
}

func setIndex(container Value, i int, v Value) Value {
	s, ok := container.([]any)
	if !ok {
		panic(fmt.Sprintf("lens: set index %d on non-sequence value %T", i, container))
	}
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("lens: set index %d out of range [0,%d)", i, len(s)))
	}
	next := make([]any, len(s))
	copy(next, s)
	next[i] = v
	return next
}
