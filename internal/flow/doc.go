// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow implements the unidirectional state/effect runtime that drives
// the client application.
//
// A feature is described by a [Reducer]: a pure function that takes the
// current state and an action and returns the next state together with an
// [Effect]. The reducer never performs work itself; it only describes it.
// The [Store] owns the state, processes actions one at a time, commits the
// returned state and executes the returned effect:
//
//   - [Send] enqueues a follow-up action that is processed after the current
//     state has been committed;
//   - [Run] starts a unit of asynchronous work on its own goroutine, tracked
//     under a [CancelID]; the work reports results by sending actions;
//   - [Cancel] and [CancelScope] stop work that is still in flight.
//
// At most one unit of work is live per cancellation key. Actions produced by
// work that has been cancelled are discarded before they reach the reducer,
// so a late response can never mutate state that has moved on.
//
// Reducers are composed with [Scope] (always-present child state),
// [IfCaseLet] (one variant of a sum-typed state) and [IfLet] (optional child
// state). The two conditional operators prefix the cancellation keys of the
// child's effects with a scope name and cancel that scope as soon as the
// parent leaves the variant or drops the optional value.
package flow
