// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-app-template/internal/logger"
)

// Option configures a [Store].
type Option func(*options)

type options struct {
	log  *logger.Logger
	name string
}

// WithLogger sets the logger used for dispatch and effect diagnostics.
// Defaults to [logger.Nop].
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithName sets the store name used in logs, spans and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

type task struct {
	key       CancelID
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

type envelope[A any] struct {
	action A
	origin *task
}

// Store holds the state of a feature tree and serializes every change to it.
//
// Actions are processed one at a time in FIFO order by whichever goroutine
// finds the queue idle; a Send issued while another goroutine is draining
// only enqueues. The reducer runs and the state is committed under the store
// lock. Subscribers are notified after the lock is released, in commit
// order.
type Store[S, A any] struct {
	name    string
	log     *logger.Logger
	reducer Reducer[S, A]

	ctx  context.Context
	stop context.CancelFunc

	mu       sync.Mutex
	state    S
	queue    []envelope[A]
	draining bool
	closed   bool
	tasks    map[CancelID]*task
	seq      uint64
	subs     map[uint64]func(S)
	nextSub  uint64

	wg sync.WaitGroup
}

// New returns a store holding initial and driven by reducer.
func New[S, A any](initial S, reducer Reducer[S, A], opts ...Option) *Store[S, A] {
	o := options{log: logger.Nop(), name: "store"}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Store[S, A]{
		name:    o.name,
		log:     o.log,
		reducer: reducer,
		ctx:     ctx,
		stop:    stop,
		state:   initial,
		tasks:   make(map[CancelID]*task),
		subs:    make(map[uint64]func(S)),
	}
}

// Send dispatches action. It returns once the action has been queued and,
// when no other goroutine is draining, after the queue has been drained.
// Actions sent after [Store.Shutdown] are ignored.
func (s *Store[S, A]) Send(action A) {
	s.enqueue(action, nil)
}

// State returns the current state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the current state. The store is always present, so the
// second result is always true.
func (s *Store[S, A]) Snapshot() (S, bool) {
	return s.State(), true
}

// Subscribe registers fn to be called with every committed state. The
// returned function removes the subscription.
func (s *Store[S, A]) Subscribe(fn func(S)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Observe implements [Source].
func (s *Store[S, A]) Observe(fn func(S, bool)) func() {
	return s.Subscribe(func(state S) { fn(state, true) })
}

// Running returns the sorted keys of in-flight work inside scope. An empty
// scope returns every key.
func (s *Store[S, A]) Running(scope CancelID) []CancelID {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]CancelID, 0, len(s.tasks))
	for key := range s.tasks {
		if scope == "" || key.In(scope) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Shutdown stops accepting actions, cancels all running work and waits for
// it to return or for ctx to expire.
func (s *Store[S, A]) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.queue = nil
	for _, t := range s.tasks {
		s.cancelLocked(t)
	}
	s.mu.Unlock()
	s.stop()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Debug().Str("store", s.name).Msg("store stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("store %q: waiting for effects: %w", s.name, ctx.Err())
	}
}

func (s *Store[S, A]) enqueue(action A, origin *task) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if origin != nil && origin.cancelled.Load() {
		s.mu.Unlock()
		s.dropStale(action, origin)
		return
	}

	s.queue = append(s.queue, envelope[A]{action: action, origin: origin})
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
}

func (s *Store[S, A]) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 || s.closed {
			s.queue = nil
			s.draining = false
			s.mu.Unlock()
			return
		}

		next := s.queue[0]
		s.queue[0] = envelope[A]{}
		s.queue = s.queue[1:]

		if next.origin != nil && next.origin.cancelled.Load() {
			s.mu.Unlock()
			s.dropStale(next.action, next.origin)
			continue
		}

		state, effect := s.reducer(s.state, next.action)
		s.state = state
		s.applyLocked(effect)

		subs := make([]func(S), 0, len(s.subs))
		for _, id := range slices.Sorted(maps.Keys(s.subs)) {
			subs = append(subs, s.subs[id])
		}
		s.mu.Unlock()

		recordAction(s.ctx, s.name)
		s.log.Debug().
			Str("store", s.name).
			Str("action", actionName(next.action)).
			Int("effects", effect.Len()).
			Msg("action reduced")

		for _, fn := range subs {
			fn(state)
		}
	}
}

func (s *Store[S, A]) applyLocked(effect Effect[A]) {
	for _, op := range effect.ops {
		switch op.kind {
		case opSend:
			s.queue = append(s.queue, envelope[A]{action: op.action})
		case opCancel:
			if t, ok := s.tasks[op.id]; ok {
				s.cancelLocked(t)
			}
		case opCancelScope:
			for key, t := range s.tasks {
				if key.In(op.id) {
					s.cancelLocked(t)
				}
			}
		case opRun:
			s.startLocked(op.id, op.work)
		}
	}
}

func (s *Store[S, A]) startLocked(id CancelID, work Work[A]) {
	if s.closed {
		return
	}

	key := id
	if key.anonymous() {
		s.seq++
		key += CancelID("#" + strconv.FormatUint(s.seq, 10))
	}
	if prev, ok := s.tasks[key]; ok {
		s.cancelLocked(prev)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	t := &task{key: key, cancel: cancel}
	s.tasks[key] = t
	s.wg.Add(1)

	s.log.Debug().Str("store", s.name).Str("cancel_id", string(key)).Msg("effect started")
	go s.run(ctx, t, work)
}

func (s *Store[S, A]) run(ctx context.Context, t *task, work Work[A]) {
	defer s.wg.Done()

	ctx, span := startEffectSpan(ctx, s.name, t.key)
	defer span.End()
	recordStarted(ctx, s.name)

	work(ctx, func(a A) { s.enqueue(a, t) })

	s.mu.Lock()
	if s.tasks[t.key] == t {
		delete(s.tasks, t.key)
	}
	s.mu.Unlock()
	t.cancel()

	recordFinished(ctx, s.name)
}

func (s *Store[S, A]) cancelLocked(t *task) {
	t.cancelled.Store(true)
	t.cancel()
	delete(s.tasks, t.key)

	recordCancelled(s.ctx, s.name)
	s.log.Debug().Str("store", s.name).Str("cancel_id", string(t.key)).Msg("effect cancelled")
}

func (s *Store[S, A]) dropStale(action A, origin *task) {
	recordDropped(s.ctx, CancelID(s.name))
	s.log.Debug().
		Str("store", s.name).
		Str("cancel_id", string(origin.key)).
		Str("action", actionName(action)).
		Msg("dropped action from cancelled effect")
}

func actionName(action any) string {
	return fmt.Sprintf("%T", action)
}
