// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

// Source is a read-only projection of state plus a dispatch entry point. It
// is what the rendering layer consumes; it never exposes a way to mutate
// state directly. *Store implements Source, as does every [View].
type Source[S, A any] interface {
	// Snapshot returns the current state and whether it is present.
	Snapshot() (S, bool)
	// Send dispatches an action.
	Send(action A)
	// Observe calls fn with every committed state until the returned
	// function is called.
	Observe(fn func(S, bool)) func()
}

// View is a [Source] focused on part of a parent source.
type View[S, A any] struct {
	snapshot func() (S, bool)
	send     func(A)
	observe  func(func(S, bool)) func()
}

// ScopeView derives a child view. toChild extracts the child state and
// reports whether it is present; fromChild embeds child actions into parent
// actions. Fixed, case and optional regions all fit this shape: a fixed
// field is always present.
func ScopeView[P, PA, C, CA any](parent Source[P, PA], toChild func(P) (C, bool), fromChild func(CA) PA) *View[C, CA] {
	return &View[C, CA]{
		snapshot: func() (C, bool) {
			p, ok := parent.Snapshot()
			if !ok {
				var zero C
				return zero, false
			}
			return toChild(p)
		},
		send: func(a CA) {
			parent.Send(fromChild(a))
		},
		observe: func(fn func(C, bool)) func() {
			return parent.Observe(func(p P, ok bool) {
				if !ok {
					var zero C
					fn(zero, false)
					return
				}
				fn(toChild(p))
			})
		},
	}
}

// Snapshot implements [Source].
func (v *View[S, A]) Snapshot() (S, bool) {
	return v.snapshot()
}

// Send implements [Source]. Actions sent while the region is absent are
// still forwarded; the scoping reducers drop them.
func (v *View[S, A]) Send(action A) {
	v.send(action)
}

// Observe implements [Source].
func (v *View[S, A]) Observe(fn func(S, bool)) func() {
	return v.observe(fn)
}

// Fixed adapts a lens getter for [ScopeView].
func Fixed[P, C any](get func(P) C) func(P) (C, bool) {
	return func(p P) (C, bool) {
		return get(p), true
	}
}
