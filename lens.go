// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

// Lens algebra core.
//
// Minimal definition: a Lens is a Get/Set pair; Refine and Compose are
// necessary and sufficient to build every accessor in this package.
// Coalesce and Modify are derived operations kept for the common cases.

// Lens is a first-class accessor addressing a focus of type A within a
// subject of type S. Both functions must be pure: Set never mutates its
// subject, it returns a new subject sharing every untouched branch.
//
// A well-formed lens satisfies three laws:
//
//	l.Get(l.Set(s, a)) == a                  // get-set
//	l.Set(s, l.Get(s)) == s                  // set-get (structurally)
//	l.Set(l.Set(s, a1), a2) == l.Set(s, a2)  // set-set
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Identity is the lens focusing a subject on itself.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		Get: func(s S) S { return s },
		Set: func(_ S, s S) S { return s },
	}
}

// Refine builds a new lens by post-composing a pure extractor/updater
// pair onto an existing lens. set receives the parent's current focus
// value, never the root subject, and returns the updated focus value.
func Refine[S, A, B any](l Lens[S, A], get func(A) B, set func(A, B) A) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B { return get(l.Get(s)) },
		Set: func(s S, b B) S { return l.Set(s, set(l.Get(s), b)) },
	}
}

// Compose chains two lenses: the focus of sa becomes the subject of ab.
func Compose[S, A, B any](sa Lens[S, A], ab Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B { return ab.Get(sa.Get(s)) },
		Set: func(s S, b B) S { return sa.Set(s, ab.Set(sa.Get(s), b)) },
	}
}

// Coalesce maps a possibly-absent focus to a guaranteed one on read:
// a nil focus reads as fallback. Writes pass through unchanged.
//
// Absence means a nil interface value; a typed nil container stored in
// the focus is not considered absent.
func Coalesce[S, A any](l Lens[S, A], fallback A) Lens[S, A] {
	return Lens[S, A]{
		Get: func(s S) A {
			a := l.Get(s)
			if any(a) == nil {
				return fallback
			}
			return a
		},
		Set: l.Set,
	}
}

// Modify applies f to the focus and writes the result back, returning
// the new subject. Equivalent to l.Set(s, f(l.Get(s))).
func Modify[S, A any](l Lens[S, A], s S, f func(A) A) S {
	return l.Set(s, f(l.Get(s)))
}
