package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			require.Len(t, w.Entities(), c.create)
			if c.destroyIndex >= 0 {
				require.True(t, w.DestroyEntity(ents[c.destroyIndex]))
				assert.False(t, w.IsAlive(ents[c.destroyIndex]))
				assert.False(t, w.DestroyEntity(ents[c.destroyIndex]), "double destroy")
				assert.Len(t, w.Entities(), c.create-1)
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()

	old := w.CreateEntity()
	require.NoError(t, Add(w, old, h, 1))
	require.True(t, w.DestroyEntity(old))

	fresh := w.CreateEntity()
	assert.NotEqual(t, old, fresh)
	assert.True(t, w.IsAlive(fresh))
	assert.False(t, w.IsAlive(old))
	assert.False(t, w.hasComponent(fresh, h), "components must not survive destroy")
	_, ok := Get(w, old, h)
	assert.False(t, ok)
}

func TestComponents(t *testing.T) {
	w := NewWorld()

	h1 := NewComponent[int]()
	h2 := NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				require.True(t, ok)
				assert.Equal(t, 10, *v)
			},
			teardown: func() bool { return w.removeComponent(e1, h1.ID()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				assert.True(t, w.hasComponent(e1, h2))
				assert.True(t, w.hasComponent(e2, h2))
			},
			teardown: func() bool { return w.removeComponent(e1, h2.ID()) },
		},
		{
			name:  "write_through_pointer",
			setup: func() error { return Add(w, e2, h1, 1) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1)
				*v = 42
				again, _ := Get(w, e2, h1)
				assert.Equal(t, 42, *again)
			},
			teardown: func() bool { return w.removeComponent(e2, h1.ID()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.setup())
			tc.check(t)
			require.True(t, tc.teardown())
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	err := Add(w, e, h, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEntityNotAlive))

	var zero ComponentHandle[int]
	err = Add(w, w.CreateEntity(), zero, 1)
	assert.True(t, errors.Is(err, ErrInvalidComponentKind))
}

func TestQueryIntersectionIsOrdered(t *testing.T) {
	w := NewWorld()
	ka := NewComponent[int]()
	kb := NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	e4 := w.CreateEntity()

	// insert out of order so dense order differs from id order
	require.NoError(t, Add(w, e4, ka, 4))
	require.NoError(t, Add(w, e2, ka, 2))
	require.NoError(t, Add(w, e1, ka, 1))
	require.NoError(t, Add(w, e4, kb, 4))
	require.NoError(t, Add(w, e2, kb, 2))
	require.NoError(t, Add(w, e3, kb, 3))

	assert.Equal(t, []Entity{e2, e4}, w.Query(ka, kb))
	assert.Equal(t, []Entity{e1, e2, e4}, w.Query(ka))

	first, ok := w.First(kb)
	require.True(t, ok)
	assert.Equal(t, e2, first)

	// swap-remove must not disturb query order
	require.True(t, w.removeComponent(e2, ka.ID()))
	assert.Equal(t, []Entity{e1, e4}, w.Query(ka))
}

func TestForEachMutates(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()
	var ents []Entity
	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		require.NoError(t, Add(w, e, h, i))
		ents = append(ents, e)
	}

	var seen []Entity
	ForEach(w, h, func(e Entity, v *int) {
		seen = append(seen, e)
		*v *= 10
	})
	assert.Equal(t, ents, seen)

	v, _ := Get(w, ents[2], h)
	assert.Equal(t, 20, *v)
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Push(Event{Type: EventStomp})
	q.Push(Event{Type: EventPlayerDied})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, EventStomp, got[0].Type)
	assert.Nil(t, q.Drain())
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{&order, "a"}, nil, countingSystem{&order, "b"})
	s.Add(nil)
	s.Add(countingSystem{&order, "c"})
	s.Update(NewWorld())
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Len(t, s.Systems(), 3)
}
