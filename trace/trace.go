/*
Package trace defines the step events emitted by maze generators and
solvers, and a recorder that drains an algorithm into a replayable
sequence.

Every algorithm advances through single Step calls, each returning one
immutable Event. Control returns to the caller between steps, which is how
an external driver implements pausing, playback speed, and frame capture
without the algorithms' awareness.
*/
package trace

import (
	"github.com/google/uuid"

	"github.com/mazeforge/mazeforge/maze"
)

// Kind tags the atomic action an Event describes.
type Kind int

const (
	// KindWallBroken reports the wall between From and To was removed.
	KindWallBroken Kind = iota
	// KindWallAdded reports a wall between From and To was built.
	// Only Recursive Division emits this polarity.
	KindWallAdded
	// KindWallRejected reports a candidate wall was considered and left
	// standing.
	KindWallRejected
	// KindCellVisited reports the algorithm moved to or discovered From.
	KindCellVisited
	// KindCellMarked reports From was marked off: backtracked over,
	// erased from a walk, or filled as a dead end.
	KindCellMarked
	// KindPathCell reports From belongs to the discovered path.
	KindPathCell
	// KindDone reports the algorithm has completed. Stepping a finished
	// algorithm keeps returning this event.
	KindDone
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindWallBroken:
		return "wall-broken"
	case KindWallAdded:
		return "wall-added"
	case KindWallRejected:
		return "wall-rejected"
	case KindCellVisited:
		return "cell-visited"
	case KindCellMarked:
		return "cell-marked"
	case KindPathCell:
		return "path-cell"
	case KindDone:
		return "done"
	}
	return "unknown"
}

// Event describes one atomic algorithmic action. Events are produced in
// strict chronological order and never mutated.
type Event struct {
	Kind Kind
	// From is the primary cell of the event. For wall events it is one
	// end of the wall.
	From maze.CellPosition
	// To is the other end of the wall for wall events; equal to From
	// otherwise.
	To maze.CellPosition
	// Cost carries auxiliary data for visualization, e.g. the f-score of
	// a frontier cell in A*.
	Cost int
}

// Done returns the terminal event.
func Done() Event {
	return Event{Kind: KindDone}
}

// IsDone reports whether the event is the terminal signal.
func (e Event) IsDone() bool {
	return e.Kind == KindDone
}

// Stepper is the shared contract of generators and solvers: one atomic
// action per Step call.
type Stepper interface {
	// Step advances the algorithm by one atomic action and returns the
	// resulting event. After completion it returns the Done event.
	Step() Event
	// IsDone reports whether the algorithm has completed.
	IsDone() bool
}

// Recording holds the full event sequence of one algorithm run.
type Recording struct {
	ID     uuid.UUID // Identifies the run in logs and API responses.
	Events []Event   // All non-terminal events, in order.
}

// Capture drains the stepper to completion and returns the recording.
// The terminal Done event is not stored.
func Capture(s Stepper) *Recording {
	rec := &Recording{ID: uuid.New()}
	for !s.IsDone() {
		e := s.Step()
		if e.IsDone() {
			break
		}
		rec.Events = append(rec.Events, e)
	}
	return rec
}

// CountKind returns how many recorded events carry the given kind.
func (r *Recording) CountKind(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
