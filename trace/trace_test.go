package trace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mazeforge/mazeforge/maze"
)

// scriptedStepper replays a fixed event sequence, then reports done.
type scriptedStepper struct {
	events []Event
	next   int
}

func (s *scriptedStepper) Step() Event {
	if s.IsDone() {
		return Done()
	}
	e := s.events[s.next]
	s.next++
	return e
}

func (s *scriptedStepper) IsDone() bool {
	return s.next >= len(s.events)
}

func TestCapture(t *testing.T) {
	a := maze.CellPosition{Row: 0, Col: 0}
	b := maze.CellPosition{Row: 0, Col: 1}
	script := []Event{
		{Kind: KindCellVisited, From: a, To: a},
		{Kind: KindWallBroken, From: a, To: b},
		{Kind: KindCellMarked, From: b, To: b},
	}

	t.Run("drains all events in order", func(t *testing.T) {
		rec := Capture(&scriptedStepper{events: script})
		assert.Equal(t, script, rec.Events)
		assert.NotEqual(t, uuid.Nil, rec.ID)
	})

	t.Run("does not record the terminal event", func(t *testing.T) {
		withDone := append(append([]Event{}, script...), Done())
		rec := Capture(&scriptedStepper{events: withDone})
		assert.Equal(t, script, rec.Events)
	})

	t.Run("handles an already finished stepper", func(t *testing.T) {
		rec := Capture(&scriptedStepper{})
		assert.Empty(t, rec.Events)
	})
}

func TestCountKind(t *testing.T) {
	rec := &Recording{Events: []Event{
		{Kind: KindWallBroken},
		{Kind: KindWallRejected},
		{Kind: KindWallBroken},
		{Kind: KindCellVisited},
	}}
	assert.Equal(t, 2, rec.CountKind(KindWallBroken))
	assert.Equal(t, 1, rec.CountKind(KindWallRejected))
	assert.Equal(t, 0, rec.CountKind(KindPathCell))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wall-broken", KindWallBroken.String())
	assert.Equal(t, "done", KindDone.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestEventIsDone(t *testing.T) {
	assert.True(t, Done().IsDone())
	assert.False(t, Event{Kind: KindCellVisited}.IsDone())
}
