// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens_test

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"code.hybscloud.com/lens"
)

const propertyN = 1000

var stateKeys = []string{"a", "b", "c", "d", "e"}

// randLeaf returns a random comparable leaf value.
func randLeaf(rng *rand.Rand) any {
	switch rng.IntN(3) {
	case 0:
		return rng.IntN(2001) - 1000
	case 1:
		return rng.IntN(2) == 0
	default:
		b := make([]byte, rng.IntN(8)+1)
		for i := range b {
			b[i] = byte(rng.IntN(26) + 'a')
		}
		return string(b)
	}
}

// randObject returns a random object with every key in stateKeys
// present, nesting objects and sequences up to depth.
func randObject(rng *rand.Rand, depth int) map[string]any {
	m := make(map[string]any, len(stateKeys))
	for _, k := range stateKeys {
		switch {
		case depth > 0 && rng.IntN(3) == 0:
			m[k] = randObject(rng, depth-1)
		case depth > 0 && rng.IntN(3) == 0:
			n := rng.IntN(3) + 1
			s := make([]any, n)
			for i := range s {
				s[i] = randLeaf(rng)
			}
			m[k] = s
		default:
			m[k] = randLeaf(rng)
		}
	}
	return m
}

func randKey(rng *rand.Rand) string {
	return stateKeys[rng.IntN(len(stateKeys))]
}

// refOf returns the identity pointer of a composite value, for
// reference-equality assertions on structural sharing. Leaves have no
// identity and report zero.
func refOf(v any) uintptr {
	switch v.(type) {
	case map[string]any, []any:
		return reflect.ValueOf(v).Pointer()
	}
	return 0
}

// --- Group 1: Prop lens laws ---

// TestPropertyPropGetSet: l.Get(l.Set(s, a)) ≡ a
func TestPropertyPropGetSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 2)
		k := randKey(rng)
		a := randLeaf(rng)
		l := lens.Prop(lens.Identity[lens.Value](), k)
		if got := l.Get(l.Set(s, a)); got != a {
			t.Fatalf("get-set: got %v, want %v (key %q)", got, a, k)
		}
	}
}

// TestPropertyPropSetGet: l.Set(s, l.Get(s)) ≡ s structurally
func TestPropertyPropSetGet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 2)
		k := randKey(rng)
		l := lens.Prop(lens.Identity[lens.Value](), k)
		if got := l.Set(s, l.Get(s)); !reflect.DeepEqual(got, lens.Value(s)) {
			t.Fatalf("set-get: %v != %v (key %q)", got, s, k)
		}
	}
}

// TestPropertyPropSetSet: l.Set(l.Set(s, a1), a2) ≡ l.Set(s, a2)
func TestPropertyPropSetSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 2)
		k := randKey(rng)
		a1, a2 := randLeaf(rng), randLeaf(rng)
		l := lens.Prop(lens.Identity[lens.Value](), k)
		left := l.Set(l.Set(s, a1), a2)
		right := l.Set(s, a2)
		if !reflect.DeepEqual(left, right) {
			t.Fatalf("set-set: %v != %v (key %q)", left, right, k)
		}
	}
}

// --- Group 2: Compose laws ---

// TestPropertyComposeGetSet: composed lenses still satisfy get-set.
func TestPropertyComposeGetSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 0)
		s["nest"] = randObject(rng, 0)
		k := randKey(rng)
		a := randLeaf(rng)
		l := lens.Compose(
			lens.Prop(lens.Identity[lens.Value](), "nest"),
			lens.Prop(lens.Identity[lens.Value](), k),
		)
		if got := l.Get(l.Set(s, a)); got != a {
			t.Fatalf("compose get-set: got %v, want %v (key %q)", got, a, k)
		}
	}
}

// TestPropertyComposeSetGet: composed lenses still satisfy set-get.
func TestPropertyComposeSetGet(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 0)
		s["nest"] = randObject(rng, 0)
		k := randKey(rng)
		l := lens.Compose(
			lens.Prop(lens.Identity[lens.Value](), "nest"),
			lens.Prop(lens.Identity[lens.Value](), k),
		)
		if got := l.Set(s, l.Get(s)); !reflect.DeepEqual(got, lens.Value(s)) {
			t.Fatalf("compose set-get: %v != %v (key %q)", got, s, k)
		}
	}
}

// --- Group 3: Coalesce ---

// TestPropertyCoalescePresentIsTransparent: a present focus reads and
// writes exactly as the underlying lens does.
func TestPropertyCoalescePresentIsTransparent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 1)
		k := randKey(rng)
		base := lens.Prop(lens.Identity[lens.Value](), k)
		co := lens.Coalesce(base, "fallback")
		if got, want := co.Get(s), base.Get(s); !reflect.DeepEqual(got, want) {
			t.Fatalf("coalesce get: got %v, want %v (key %q)", got, want, k)
		}
		a := randLeaf(rng)
		if got, want := co.Set(s, a), base.Set(s, a); !reflect.DeepEqual(got, want) {
			t.Fatalf("coalesce set: %v != %v (key %q)", got, want, k)
		}
	}
}

// --- Group 4: Structural sharing ---

// TestPropertyStructuralSharing: writing through one key leaves every
// composite sibling reference-identical to its value before the update.
func TestPropertyStructuralSharing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := randObject(rng, 2)
		k := randKey(rng)
		l := lens.Prop(lens.Identity[lens.Value](), k)
		next := l.Set(s, randLeaf(rng)).(map[string]any)
		for _, sib := range stateKeys {
			if sib == k {
				continue
			}
			if refOf(s[sib]) != refOf(next[sib]) {
				t.Fatalf("sibling %q lost identity after writing %q", sib, k)
			}
			if refOf(s[sib]) == 0 && !reflect.DeepEqual(s[sib], next[sib]) {
				t.Fatalf("leaf sibling %q changed after writing %q", sib, k)
			}
		}
	}
}

// TestPropertyDeepSharing: a two-level write copies only the containers
// on the written path; untouched branches keep identity.
func TestPropertyDeepSharing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		s := map[string]any{
			"target": randObject(rng, 1),
			"other":  randObject(rng, 1),
		}
		k := randKey(rng)
		l := lens.Compose(
			lens.Prop(lens.Identity[lens.Value](), "target"),
			lens.Prop(lens.Identity[lens.Value](), k),
		)
		next := l.Set(s, randLeaf(rng)).(map[string]any)
		if refOf(next["other"]) != refOf(s["other"]) {
			t.Fatal("untouched branch lost identity")
		}
		if refOf(next["target"]) == refOf(s["target"]) {
			t.Fatal("written branch was not copied")
		}
	}
}
