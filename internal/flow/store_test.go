package flow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderState struct {
	Values []string
}

type (
	record     struct{ value string }
	chain      struct{ first, second string }
	startWork  struct {
		id      CancelID
		release chan struct{}
		sent    chan struct{}
		value   string
	}
	stopWork   struct{ id CancelID }
	stopScope  struct{ scope CancelID }
	startTimer struct {
		id       CancelID
		interval time.Duration
	}
)

func recorderReducer(s recorderState, a any) (recorderState, Effect[any]) {
	switch a := a.(type) {
	case record:
		s.Values = append(slicesClone(s.Values), a.value)
		return s, None[any]()
	case chain:
		s.Values = append(slicesClone(s.Values), a.first)
		return s, Send[any](record{value: a.second})
	case startWork:
		return s, Run[any](a.id, func(ctx context.Context, send func(any)) {
			<-a.release
			send(record{value: a.value})
			if a.sent != nil {
				close(a.sent)
			}
		})
	case stopWork:
		return s, Cancel[any](a.id)
	case stopScope:
		return s, CancelScope[any](a.scope)
	case startTimer:
		return s, Run[any](a.id, func(ctx context.Context, send func(any)) {
			ticker := time.NewTicker(a.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					send(record{value: "tick"})
				}
			}
		})
	}
	return s, None[any]()
}

func slicesClone(in []string) []string {
	return append([]string(nil), in...)
}

func newRecorderStore(t *testing.T) *Store[recorderState, any] {
	t.Helper()
	s := New(recorderState{}, recorderReducer, WithName("test"))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, s.Shutdown(ctx))
	})
	return s
}

func TestStore_SendReducesSynchronously(t *testing.T) {
	s := newRecorderStore(t)

	s.Send(record{value: "a"})
	s.Send(record{value: "b"})

	assert.Equal(t, []string{"a", "b"}, s.State().Values)
}

func TestStore_SendEffectRunsAfterCommit(t *testing.T) {
	s := newRecorderStore(t)

	var seen [][]string
	unsubscribe := s.Subscribe(func(st recorderState) {
		seen = append(seen, st.Values)
	})
	defer unsubscribe()

	s.Send(chain{first: "first", second: "second"})

	require.Len(t, seen, 2)
	assert.Equal(t, []string{"first"}, seen[0], "follow-up must observe the committed state")
	assert.Equal(t, []string{"first", "second"}, seen[1])
}

func TestStore_RunDeliversActions(t *testing.T) {
	s := newRecorderStore(t)
	release := make(chan struct{})

	s.Send(startWork{id: "work", release: release, value: "done"})
	assert.Equal(t, []CancelID{"work"}, s.Running(""))

	close(release)

	require.Eventually(t, func() bool {
		return len(s.State().Values) == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{"done"}, s.State().Values)
	require.Eventually(t, func() bool {
		return len(s.Running("")) == 0
	}, time.Second, time.Millisecond)
}

func TestStore_CancelledWorkCannotMutateState(t *testing.T) {
	s := newRecorderStore(t)
	release := make(chan struct{})
	sent := make(chan struct{})

	s.Send(startWork{id: "login", release: release, sent: sent, value: "stale"})
	s.Send(stopWork{id: "login"})
	assert.Empty(t, s.Running(""))

	// The work ignores its context and reports anyway; send returns only
	// after the store has handled the action.
	close(release)
	<-sent

	assert.Empty(t, s.State().Values)
	s.Send(record{value: "fresh"})
	assert.Equal(t, []string{"fresh"}, s.State().Values)
}

func TestStore_RunReplacesRunningKey(t *testing.T) {
	s := newRecorderStore(t)
	first := make(chan struct{})
	firstSent := make(chan struct{})
	second := make(chan struct{})
	secondSent := make(chan struct{})

	s.Send(startWork{id: "k", release: first, sent: firstSent, value: "first"})
	s.Send(startWork{id: "k", release: second, sent: secondSent, value: "second"})
	assert.Equal(t, []CancelID{"k"}, s.Running(""))

	close(second)
	<-secondSent
	assert.Equal(t, []string{"second"}, s.State().Values)

	close(first)
	<-firstSent
	assert.Equal(t, []string{"second"}, s.State().Values)
}

func TestStore_CancelScopeStopsNestedKeysOnly(t *testing.T) {
	s := newRecorderStore(t)

	s.Send(startTimer{id: "login/login", interval: time.Hour})
	s.Send(startTimer{id: "login/twoFactor/twoFactor", interval: time.Hour})
	s.Send(startTimer{id: "main/home.refresh", interval: time.Hour})
	require.Len(t, s.Running(""), 3)
	assert.Equal(t, []CancelID{"login/login", "login/twoFactor/twoFactor"}, s.Running("login"))

	s.Send(stopScope{scope: "login"})

	assert.Equal(t, []CancelID{"main/home.refresh"}, s.Running(""))
}

func TestStore_AnonymousKeysAreUnique(t *testing.T) {
	s := newRecorderStore(t)

	s.Send(startTimer{id: "", interval: time.Hour})
	s.Send(startTimer{id: "scope/", interval: time.Hour})
	s.Send(startTimer{id: "scope/", interval: time.Hour})

	assert.Equal(t, []CancelID{"#1", "scope/#2", "scope/#3"}, s.Running(""))
}

func TestStore_CancelUnknownKeyIsNoop(t *testing.T) {
	s := newRecorderStore(t)

	s.Send(stopWork{id: "missing"})
	s.Send(record{value: "ok"})

	assert.Equal(t, []string{"ok"}, s.State().Values)
}

func TestStore_TimerDeliversUntilCancelled(t *testing.T) {
	s := newRecorderStore(t)

	s.Send(startTimer{id: "timer", interval: time.Millisecond})
	require.Eventually(t, func() bool {
		return len(s.State().Values) >= 3
	}, time.Second, time.Millisecond)

	s.Send(stopWork{id: "timer"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	n := len(s.State().Values)
	time.Sleep(5 * time.Millisecond)
	assert.Len(t, s.State().Values, n)
}

func TestStore_ConcurrentSendsAreSerialized(t *testing.T) {
	s := newRecorderStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Send(record{value: "x"})
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(s.State().Values) == 50
	}, time.Second, time.Millisecond)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := newRecorderStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func(recorderState) { calls++ })
	s.Send(record{value: "a"})
	unsubscribe()
	s.Send(record{value: "b"})

	assert.Equal(t, 1, calls)
}

func TestStore_SubscriberMaySend(t *testing.T) {
	s := newRecorderStore(t)

	s.Subscribe(func(st recorderState) {
		if len(st.Values) == 1 {
			s.Send(record{value: "from subscriber"})
		}
	})
	s.Send(record{value: "a"})

	assert.Equal(t, []string{"a", "from subscriber"}, s.State().Values)
}

func TestStore_ShutdownIgnoresLaterSends(t *testing.T) {
	s := New(recorderState{}, recorderReducer)

	s.Send(startTimer{id: "timer", interval: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.NoError(t, s.Shutdown(ctx), "shutdown is idempotent")

	s.Send(record{value: "late"})

	assert.Empty(t, s.State().Values)
	assert.Empty(t, s.Running(""))
}

func TestStore_ShutdownTimesOut(t *testing.T) {
	s := New(recorderState{}, recorderReducer)
	release := make(chan struct{})
	defer close(release)

	s.Send(startWork{id: "stuck", release: release})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := s.Shutdown(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
