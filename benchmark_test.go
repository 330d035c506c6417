// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens_test

import (
	"testing"

	"code.hybscloud.com/lens"
)

// BenchmarkTraverseMemoized measures repeated traversal of an
// already-expanded path (memo table hits only).
func BenchmarkTraverseMemoized(b *testing.B) {
	root := lens.New(map[string]any{
		"user": map[string]any{"account": map[string]any{"balance": 1}},
	})
	root.Prop("user").Prop("account").Prop("balance")

	for b.Loop() {
		_ = root.Prop("user").Prop("account").Prop("balance")
	}
}

// BenchmarkUsePinned measures collapsing a node whose value has not
// changed since the previous collapse.
func BenchmarkUsePinned(b *testing.B) {
	root := lens.New(map[string]any{
		"todos": []any{map[string]any{"completed": false}},
	})
	node := root.Prop("todos")
	node.Use(nil)

	for b.Loop() {
		_, _ = node.Use(nil)
	}
}

// BenchmarkStructuralSharingSet measures a two-level write through a
// composed lens.
func BenchmarkStructuralSharingSet(b *testing.B) {
	s := map[string]any{
		"user":  map[string]any{"name": "a", "age": 1},
		"other": map[string]any{"x": 1},
	}
	l := lens.Compose(
		lens.Prop(lens.Identity[lens.Value](), "user"),
		lens.Prop(lens.Identity[lens.Value](), "age"),
	)

	for b.Loop() {
		_ = l.Set(s, 2)
	}
}

// BenchmarkDecideKeyedSequence measures the keyed evaluator over a
// sequence focus.
func BenchmarkDecideKeyedSequence(b *testing.B) {
	prev := make([]any, 32)
	next := make([]any, 32)
	for i := range prev {
		elem := map[string]any{"completed": false, "title": "t"}
		prev[i] = elem
		next[i] = elem
	}
	spec := lens.Keyed{"completed": true}

	for b.Loop() {
		_ = lens.Decide(prev, next, spec)
	}
}
