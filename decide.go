// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

import (
	"fmt"
	"reflect"
)

// Should-update evaluation.
// Decide consumes a declarative spec and two snapshot values and
// reports whether a consumer pinned at the previous value should
// advance to the next one. Evaluation is shape-directed and
// short-circuits on the first detected difference.

// ShouldUpdate is the declarative comparison spec grammar:
//
//	true                     — advance when identity differs
//	false                    — never advance
//	Predicate                — custom comparison
//	[]string                 — advance when any listed key's identity
//	                           differs (or a sequence's length changes)
//	Keyed                    — per-key nested specs; applied to every
//	                           element for sequence-valued foci
//
// A nil spec is equivalent to true.
type ShouldUpdate = any

// Predicate is a custom binary comparison receiving the previous and
// next raw snapshot values.
type Predicate = func(prev, next Value) bool

// Keyed maps member keys to nested specs. Unlisted keys are ignored.
// Applied to a sequence-valued focus, the mapping is evaluated against
// every element (logical OR) and a length change always advances.
type Keyed = map[string]ShouldUpdate

// Decide reports whether next is a significant change over prev
// according to spec. Absence on either side of a listed key is a
// difference; a keyed or key-set spec applied when both sides are
// leaves is a no-op.
func Decide(prev, next Value, spec ShouldUpdate) bool {
	switch sp := spec.(type) {
	case nil:
		return !same(prev, next)
	case bool:
		return sp && !same(prev, next)
	case Predicate:
		return sp(prev, next)
	case []string:
		return decideKeys(prev, next, sp)
	case Keyed:
		return decideKeyed(prev, next, sp)
	}
	panic(fmt.Sprintf("lens: invalid should-update spec %T", spec))
}

type shape uint8

const (
	shapeLeaf shape = iota
	shapeObject
	shapeSeq
)

func shapeOf(v Value) shape {
	switch v.(type) {
	case map[string]any:
		return shapeObject
	case []any:
		return shapeSeq
	default:
		return shapeLeaf
	}
}

func decideKeys(prev, next Value, keys []string) bool {
	ps, ns := shapeOf(prev), shapeOf(next)
	if ps != ns {
		// the shape itself changed
		return true
	}
	switch ps {
	case shapeSeq:
		return len(prev.([]any)) != len(next.([]any))
	case shapeObject:
		pm, nm := prev.(map[string]any), next.(map[string]any)
		for _, k := range keys {
			if !same(pm[k], nm[k]) {
				return true
			}
		}
	}
	return false
}

func decideKeyed(prev, next Value, spec Keyed) bool {
	ps, ns := shapeOf(prev), shapeOf(next)
	if ps != ns {
		return true
	}
	switch ps {
	case shapeSeq:
		pv, nv := prev.([]any), next.([]any)
		if len(pv) != len(nv) {
			return true
		}
		for i := range pv {
			if decideKeyed(pv[i], nv[i], spec) {
				return true
			}
		}
	case shapeObject:
		pm, nm := prev.(map[string]any), next.(map[string]any)
		for k, sub := range spec {
			if Decide(pm[k], nm[k], sub) {
				return true
			}
		}
	}
	return false
}

// same reports identity equality in the sense of the traversal layer:
// composites compare by reference, leaves by value when comparable.
func same(prev, next Value) bool {
	if prev == nil || next == nil {
		return prev == nil && next == nil
	}
	switch p := prev.(type) {
	case map[string]any:
		n, ok := next.(map[string]any)
		return ok && reflect.ValueOf(p).Pointer() == reflect.ValueOf(n).Pointer()
	case []any:
		n, ok := next.([]any)
		return ok && len(p) == len(n) &&
			reflect.ValueOf(p).Pointer() == reflect.ValueOf(n).Pointer()
	default:
		pt := reflect.TypeOf(prev)
		if pt != reflect.TypeOf(next) || !pt.Comparable() {
			return false
		}
		return prev == next
	}
}
