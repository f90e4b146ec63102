// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

// Reducer computes the next state and the effect to execute for an action.
// Reducers must be pure: no I/O and no blocking. State containing pointers
// or slices is treated as immutable and replaced rather than mutated in
// place, because snapshots handed to subscribers share memory with it.
type Reducer[S, A any] func(state S, action A) (S, Effect[A])

// Combine runs reducers in order, threading state through them, and merges
// their effects in the same order.
func Combine[S, A any](reducers ...Reducer[S, A]) Reducer[S, A] {
	return func(state S, action A) (S, Effect[A]) {
		effects := make([]Effect[A], 0, len(reducers))
		for _, r := range reducers {
			var e Effect[A]
			state, e = r(state, action)
			effects = append(effects, e)
		}
		return state, Merge(effects...)
	}
}

// Empty is a reducer that never changes state and produces no effects. It is
// the parent of a composition that only routes actions to children.
func Empty[S, A any]() Reducer[S, A] {
	return func(state S, _ A) (S, Effect[A]) {
		return state, None[A]()
	}
}
