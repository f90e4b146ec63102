package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures: a parent that is either "on" (holding a child counter) or
// "off", and a child that counts and can start work.

type childState struct {
	Count int
}

type childAction struct {
	delta int
	work  bool
	send  bool
}

func childReducer(s childState, a childAction) (childState, Effect[childAction]) {
	s.Count += a.delta
	var effects []Effect[childAction]
	if a.work {
		effects = append(effects, Run[childAction]("work", func(context.Context, func(childAction)) {}))
	}
	if a.send {
		effects = append(effects, Send(childAction{delta: 100}))
	}
	return s, Merge(effects...)
}

type switchState interface{ isSwitch() }

type on struct{ Child childState }
type off struct{}

func (on) isSwitch()  {}
func (off) isSwitch() {}

type switchAction interface{}

type toChild struct{ Action childAction }
type turnOff struct{}

var onPrism = Prism[switchState, childState]{
	Extract: func(s switchState) (childState, bool) {
		o, ok := s.(on)
		return o.Child, ok
	},
	Embed: func(c childState) switchState { return on{Child: c} },
}

var toChildPrism = Prism[switchAction, childAction]{
	Extract: func(a switchAction) (childAction, bool) {
		c, ok := a.(toChild)
		return c.Action, ok
	},
	Embed: func(c childAction) switchAction { return toChild{Action: c} },
}

// router turns the switch off on turnOff, or when the child action asks for
// a negative delta.
func router(s switchState, a switchAction) (switchState, Effect[switchAction]) {
	switch a := a.(type) {
	case turnOff:
		return off{}, None[switchAction]()
	case toChild:
		if a.Action.delta < 0 {
			return off{}, Send[switchAction]("turned off")
		}
	}
	return s, None[switchAction]()
}

func TestScope_RoutesToFixedChild(t *testing.T) {
	type parent struct {
		Child childState
		Other int
	}
	reducer := Scope(
		Lens[parent, childState]{
			Get: func(p parent) childState { return p.Child },
			Set: func(p parent, c childState) parent { p.Child = c; return p },
		},
		toChildPrism,
		childReducer,
	)

	next, eff := reducer(parent{Other: 7}, toChild{Action: childAction{delta: 2, work: true, send: true}})

	assert.Equal(t, parent{Child: childState{Count: 2}, Other: 7}, next)
	assert.Equal(t, []CancelID{"work"}, eff.RunIDs(), "fixed scoping keeps keys unchanged")
	assert.Equal(t, []switchAction{toChild{Action: childAction{delta: 100}}}, eff.Actions())

	next, eff = reducer(next, turnOff{})
	assert.Equal(t, 2, next.Child.Count)
	assert.True(t, eff.IsNone())
}

func TestIfCaseLet_RunsChildWhenLive(t *testing.T) {
	reducer := IfCaseLet(router, "on", onPrism, toChildPrism, childReducer)

	next, eff := reducer(on{}, toChild{Action: childAction{delta: 3, work: true}})

	assert.Equal(t, on{Child: childState{Count: 3}}, next)
	assert.Equal(t, []CancelID{"on/work"}, eff.RunIDs())
	assert.Empty(t, eff.CancelIDs())
}

func TestIfCaseLet_DropsActionForAbsentCase(t *testing.T) {
	reducer := IfCaseLet(router, "on", onPrism, toChildPrism, childReducer)

	next, eff := reducer(off{}, toChild{Action: childAction{delta: 3, work: true}})

	assert.Equal(t, off{}, next)
	assert.True(t, eff.IsNone())
}

func TestIfCaseLet_CancelsScopeBeforeParentEffects(t *testing.T) {
	reducer := IfCaseLet(router, "on", onPrism, toChildPrism, childReducer)

	// The child starts work and sends, then the parent leaves the case.
	next, eff := reducer(on{}, toChild{Action: childAction{delta: -1, work: true, send: true}})

	assert.Equal(t, off{}, next)
	assert.Empty(t, eff.RunIDs(), "work from the exiting case must not start")
	assert.Equal(t, []CancelID{"on"}, eff.CancelIDs())
	require.Equal(t, opCancelScope, eff.ops[0].kind, "scope cancellation comes first")
	assert.Equal(t, []switchAction{toChild{Action: childAction{delta: 100}}, "turned off"}, eff.Actions())
}

func TestIfCaseLet_ParentOnlyTransition(t *testing.T) {
	reducer := IfCaseLet(router, "on", onPrism, toChildPrism, childReducer)

	next, eff := reducer(on{Child: childState{Count: 5}}, turnOff{})

	assert.Equal(t, off{}, next)
	assert.Equal(t, []CancelID{"on"}, eff.CancelIDs())
}

func TestIfCaseLet_EnteringCaseDoesNotCancel(t *testing.T) {
	enter := func(s switchState, a switchAction) (switchState, Effect[switchAction]) {
		if a == "enter" {
			return on{}, None[switchAction]()
		}
		return s, None[switchAction]()
	}
	reducer := IfCaseLet(enter, "on", onPrism, toChildPrism, childReducer)

	next, eff := reducer(off{}, "enter")

	assert.Equal(t, on{}, next)
	assert.True(t, eff.IsNone())
}

type sheetParent struct {
	Sheet *childState
	Title string
}

var sheetOptional = Optional[sheetParent, childState]{
	Get: func(p sheetParent) (childState, bool) {
		if p.Sheet == nil {
			return childState{}, false
		}
		return *p.Sheet, true
	},
	Set: func(p sheetParent, c childState) sheetParent {
		p.Sheet = &c
		return p
	},
}

func sheetCore(p sheetParent, a switchAction) (sheetParent, Effect[switchAction]) {
	switch a := a.(type) {
	case string:
		if a == "present" {
			p.Sheet = &childState{}
		}
	case turnOff:
		p.Sheet = nil
	}
	return p, None[switchAction]()
}

func TestIfLet_RoutesWhilePresent(t *testing.T) {
	reducer := IfLet(sheetCore, "sheet", sheetOptional, toChildPrism, childReducer)

	p, eff := reducer(sheetParent{Title: "t"}, "present")
	require.NotNil(t, p.Sheet)
	assert.True(t, eff.IsNone())

	before := p.Sheet
	p, eff = reducer(p, toChild{Action: childAction{delta: 4, work: true}})
	assert.Equal(t, 4, p.Sheet.Count)
	assert.Equal(t, 0, before.Count, "previous snapshot is not mutated")
	assert.Equal(t, []CancelID{"sheet/work"}, eff.RunIDs())
}

func TestIfLet_DismissCancelsScope(t *testing.T) {
	reducer := IfLet(sheetCore, "sheet", sheetOptional, toChildPrism, childReducer)

	p, eff := reducer(sheetParent{Sheet: &childState{Count: 1}}, turnOff{})

	assert.Nil(t, p.Sheet)
	assert.Equal(t, []CancelID{"sheet"}, eff.CancelIDs())
}

func TestIfLet_DropsActionWhenAbsent(t *testing.T) {
	reducer := IfLet(sheetCore, "sheet", sheetOptional, toChildPrism, childReducer)

	p, eff := reducer(sheetParent{}, toChild{Action: childAction{delta: 4, work: true}})

	assert.Nil(t, p.Sheet)
	assert.True(t, eff.IsNone())
}

func TestCombine_ThreadsStateAndMergesEffects(t *testing.T) {
	add := func(n int) Reducer[int, string] {
		return func(s int, a string) (int, Effect[string]) {
			return s + n, Send(a)
		}
	}

	next, eff := Combine(add(1), add(10), Empty[int, string]())(0, "x")

	assert.Equal(t, 11, next)
	assert.Equal(t, []string{"x", "x"}, eff.Actions())
}
