package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelID_In(t *testing.T) {
	tests := []struct {
		name  string
		id    CancelID
		scope CancelID
		want  bool
	}{
		{name: "equal", id: "login", scope: "login", want: true},
		{name: "nested", id: "login/twoFactor/twoFactor", scope: "login", want: true},
		{name: "nested two levels", id: "login/twoFactor/twoFactor", scope: "login/twoFactor", want: true},
		{name: "shared prefix is not nesting", id: "loginx/a", scope: "login", want: false},
		{name: "sibling", id: "main/home.load", scope: "login", want: false},
		{name: "parent of scope", id: "login", scope: "login/twoFactor", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.In(tt.scope))
		})
	}
}

func TestNone_IsEmpty(t *testing.T) {
	e := None[int]()
	assert.True(t, e.IsNone())
	assert.Zero(t, e.Len())
	assert.Empty(t, e.Execute(context.Background()))
}

func TestMerge_PreservesOrder(t *testing.T) {
	e := Merge(
		Send(1),
		None[int](),
		Cancel[int]("a"),
		Send(2),
		Run[int]("b", func(_ context.Context, send func(int)) { send(3) }),
	)

	assert.Equal(t, 4, e.Len())
	assert.Equal(t, []int{1, 2}, e.Actions())
	assert.Equal(t, []CancelID{"a"}, e.CancelIDs())
	assert.Equal(t, []CancelID{"b"}, e.RunIDs())
	assert.Equal(t, []int{1, 2, 3}, e.Execute(context.Background()))
}

func TestMerge_AllEmpty(t *testing.T) {
	assert.True(t, Merge(None[int](), None[int]()).IsNone())
}

func TestMap_WrapsSendAndRunActions(t *testing.T) {
	e := Merge(
		Send(1),
		Run[int]("work", func(_ context.Context, send func(int)) {
			send(2)
			send(3)
		}),
		CancelScope[int]("scope"),
	)

	mapped := Map(e, func(n int) string {
		return string(rune('a' + n))
	})

	assert.Equal(t, []CancelID{"work"}, mapped.RunIDs())
	assert.Equal(t, []CancelID{"scope"}, mapped.CancelIDs())
	assert.Equal(t, []string{"b", "c", "d"}, mapped.Execute(context.Background()))
}

func TestEffect_Scoped(t *testing.T) {
	e := Merge(
		Send(1),
		Run[int]("login", func(context.Context, func(int)) {}),
		Run[int]("", func(context.Context, func(int)) {}),
		Cancel[int]("login"),
		CancelScope[int]("twoFactor"),
	)

	scoped := e.scoped("login").scoped("app")

	assert.Equal(t, []int{1}, scoped.Actions())
	assert.Equal(t, []CancelID{"app/login/login", "app/login/"}, scoped.RunIDs())
	assert.Equal(t, []CancelID{"app/login/login", "app/login/twoFactor"}, scoped.CancelIDs())
	assert.True(t, scoped.RunIDs()[1].anonymous())
}

func TestEffect_WithoutRuns(t *testing.T) {
	e := Merge(
		Run[int]("a", func(context.Context, func(int)) {}),
		Send(1),
		Cancel[int]("b"),
	)

	stripped := e.withoutRuns()

	require.Equal(t, 2, stripped.Len())
	assert.Empty(t, stripped.RunIDs())
	assert.Equal(t, []int{1}, stripped.Actions())
	assert.Equal(t, []CancelID{"b"}, stripped.CancelIDs())
}
