// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"context"
	"strings"
)

// CancelID identifies in-flight work started by [Run]. Keys are hierarchical:
// scoping operators prefix them with "<scope>/", so cancelling a scope stops
// every key below it.
type CancelID string

// scopeSeparator joins scope segments inside a [CancelID].
const scopeSeparator = "/"

// In reports whether id equals scope or lies below it.
func (id CancelID) In(scope CancelID) bool {
	return id == scope || strings.HasPrefix(string(id), string(scope)+scopeSeparator)
}

// Within returns id prefixed with scope.
func (id CancelID) Within(scope CancelID) CancelID {
	return scope + scopeSeparator + id
}

// anonymous reports whether the key has no name of its own and needs a
// sequence suffix from the store.
func (id CancelID) anonymous() bool {
	return id == "" || strings.HasSuffix(string(id), scopeSeparator)
}

// Work is the body of a [Run] effect. It must return when ctx is done and
// report every outcome, failures included, through send.
type Work[A any] func(ctx context.Context, send func(A))

type opKind uint8

const (
	opSend opKind = iota + 1
	opRun
	opCancel
	opCancelScope
)

func (k opKind) String() string {
	switch k {
	case opSend:
		return "send"
	case opRun:
		return "run"
	case opCancel:
		return "cancel"
	case opCancelScope:
		return "cancel_scope"
	default:
		return "unknown"
	}
}

type operation[A any] struct {
	kind   opKind
	id     CancelID
	action A
	work   Work[A]
}

// Effect is an ordered description of work returned by a [Reducer]. The zero
// value is the empty effect.
type Effect[A any] struct {
	ops []operation[A]
}

// None returns an effect that does nothing.
func None[A any]() Effect[A] {
	return Effect[A]{}
}

// Send returns an effect that feeds action back into the store once the
// state produced by the current dispatch has been committed.
func Send[A any](action A) Effect[A] {
	return Effect[A]{ops: []operation[A]{{kind: opSend, action: action}}}
}

// Run returns an effect that executes work on its own goroutine under the
// key id. Starting work under a key that is still running cancels the
// previous work. An empty id gets a unique key from the store.
func Run[A any](id CancelID, work Work[A]) Effect[A] {
	return Effect[A]{ops: []operation[A]{{kind: opRun, id: id, work: work}}}
}

// Cancel returns an effect that stops the work running under id. Cancelling
// a key that is not running is a no-op.
func Cancel[A any](id CancelID) Effect[A] {
	return Effect[A]{ops: []operation[A]{{kind: opCancel, id: id}}}
}

// CancelScope returns an effect that stops every running key equal to scope
// or nested below it.
func CancelScope[A any](scope CancelID) Effect[A] {
	return Effect[A]{ops: []operation[A]{{kind: opCancelScope, id: scope}}}
}

// Merge concatenates effects preserving their order.
func Merge[A any](effects ...Effect[A]) Effect[A] {
	n := 0
	for _, e := range effects {
		n += len(e.ops)
	}
	if n == 0 {
		return Effect[A]{}
	}

	ops := make([]operation[A], 0, n)
	for _, e := range effects {
		ops = append(ops, e.ops...)
	}
	return Effect[A]{ops: ops}
}

// Map converts an effect over child actions into an effect over parent
// actions by passing every produced action through f.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	if len(e.ops) == 0 {
		return Effect[B]{}
	}

	ops := make([]operation[B], 0, len(e.ops))
	for _, op := range e.ops {
		mapped := operation[B]{kind: op.kind, id: op.id}
		switch op.kind {
		case opSend:
			mapped.action = f(op.action)
		case opRun:
			work := op.work
			mapped.work = func(ctx context.Context, send func(B)) {
				work(ctx, func(a A) { send(f(a)) })
			}
		}
		ops = append(ops, mapped)
	}
	return Effect[B]{ops: ops}
}

// IsNone reports whether the effect describes no work.
func (e Effect[A]) IsNone() bool {
	return len(e.ops) == 0
}

// Len returns the number of operations in the effect.
func (e Effect[A]) Len() int {
	return len(e.ops)
}

// Actions returns the actions of the effect's Send operations in order.
func (e Effect[A]) Actions() []A {
	var out []A
	for _, op := range e.ops {
		if op.kind == opSend {
			out = append(out, op.action)
		}
	}
	return out
}

// RunIDs returns the keys of the effect's Run operations in order.
func (e Effect[A]) RunIDs() []CancelID {
	var out []CancelID
	for _, op := range e.ops {
		if op.kind == opRun {
			out = append(out, op.id)
		}
	}
	return out
}

// CancelIDs returns the keys targeted by the effect's Cancel and CancelScope
// operations in order.
func (e Effect[A]) CancelIDs() []CancelID {
	var out []CancelID
	for _, op := range e.ops {
		if op.kind == opCancel || op.kind == opCancelScope {
			out = append(out, op.id)
		}
	}
	return out
}

// Execute runs the effect's work synchronously with ctx and returns every
// action produced in effect order. Reducer tests use it to drive effects
// without a store.
func (e Effect[A]) Execute(ctx context.Context) []A {
	var out []A
	for _, op := range e.ops {
		switch op.kind {
		case opSend:
			out = append(out, op.action)
		case opRun:
			op.work(ctx, func(a A) { out = append(out, a) })
		}
	}
	return out
}

func (e Effect[A]) scoped(scope CancelID) Effect[A] {
	if len(e.ops) == 0 {
		return e
	}

	ops := make([]operation[A], len(e.ops))
	for i, op := range e.ops {
		if op.kind != opSend {
			op.id = op.id.Within(scope)
		}
		ops[i] = op
	}
	return Effect[A]{ops: ops}
}

func (e Effect[A]) withoutRuns() Effect[A] {
	var ops []operation[A]
	for _, op := range e.ops {
		if op.kind != opRun {
			ops = append(ops, op)
		}
	}
	return Effect[A]{ops: ops}
}
