// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "context"

// Lens focuses on a child value that is always present in the parent.
type Lens[P, C any] struct {
	Get func(P) C
	Set func(P, C) P
}

// Prism focuses on one case of a sum type. Extract reports whether the
// parent currently holds that case; Embed builds the parent from it.
type Prism[P, C any] struct {
	Extract func(P) (C, bool)
	Embed   func(C) P
}

// Optional focuses on a child value that may be absent. Set is only called
// while the child is present.
type Optional[P, C any] struct {
	Get func(P) (C, bool)
	Set func(P, C) P
}

// Scope lifts child into a reducer over the parent. Actions the prism does
// not extract are ignored. Cancellation keys pass through unchanged, so
// children composed with Scope must not reuse each other's keys.
func Scope[P, PA, C, CA any](
	state Lens[P, C],
	action Prism[PA, CA],
	child Reducer[C, CA],
) Reducer[P, PA] {
	return func(parent P, a PA) (P, Effect[PA]) {
		ca, ok := action.Extract(a)
		if !ok {
			return parent, None[PA]()
		}

		next, eff := child(state.Get(parent), ca)
		return state.Set(parent, next), Map(eff, action.Embed)
	}
}

// IfCaseLet runs child for actions addressed to one case of the parent state
// and then runs parent for every action.
//
// A child action arriving while a different case is live is dropped. The
// child's effects are scoped under scope. When parent switches away from
// the case, the result starts with CancelScope(scope) and Run operations
// returned by the child in that same step are discarded, so no work from the
// old case can start after the switch.
func IfCaseLet[P, PA, C, CA any](
	parent Reducer[P, PA],
	scope CancelID,
	state Prism[P, C],
	action Prism[PA, CA],
	child Reducer[C, CA],
) Reducer[P, PA] {
	return func(s P, a PA) (P, Effect[PA]) {
		var childEff Effect[PA]
		if ca, ok := action.Extract(a); ok {
			if cs, live := state.Extract(s); live {
				cs, e := child(cs, ca)
				s = state.Embed(cs)
				childEff = Map(e, action.Embed).scoped(scope)
			} else {
				recordDropped(context.Background(), scope)
			}
		}

		_, wasLive := state.Extract(s)
		next, parentEff := parent(s, a)
		if _, live := state.Extract(next); wasLive && !live {
			return next, Merge(CancelScope[PA](scope), childEff.withoutRuns(), parentEff)
		}
		return next, Merge(childEff, parentEff)
	}
}

// IfLet runs child for actions addressed to an optional part of the parent
// state while it is present and then runs parent for every action. It
// follows the same dropping, scoping and cancellation rules as [IfCaseLet],
// with presence taking the place of the live case.
func IfLet[P, PA, C, CA any](
	parent Reducer[P, PA],
	scope CancelID,
	state Optional[P, C],
	action Prism[PA, CA],
	child Reducer[C, CA],
) Reducer[P, PA] {
	return func(s P, a PA) (P, Effect[PA]) {
		var childEff Effect[PA]
		if ca, ok := action.Extract(a); ok {
			if cs, present := state.Get(s); present {
				cs, e := child(cs, ca)
				s = state.Set(s, cs)
				childEff = Map(e, action.Embed).scoped(scope)
			} else {
				recordDropped(context.Background(), scope)
			}
		}

		_, wasPresent := state.Get(s)
		next, parentEff := parent(s, a)
		if _, present := state.Get(next); wasPresent && !present {
			return next, Merge(CancelScope[PA](scope), childEff.withoutRuns(), parentEff)
		}
		return next, Merge(childEff, parentEff)
	}
}
