package scheduler

import (
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// Task is anything the Manager can hold in its sorted execution queue:
// a PeriodicTask or a FixedTimeTask (spec.md §8).
type Task interface {
	// ExecTime is the next instant this task must fire at. Zero means
	// "not scheduled".
	ExecTime() time.Time
	// OnTimer fires the task's effect at the given wall-clock time.
	OnTimer(now time.Time)
	// Reschedule recomputes ExecTime and re-adds itself to its
	// Environment if a future execution exists. now==zero means "use
	// the current wall-clock time".
	Reschedule(now time.Time)
	// StatusXML appends diagnostic status (the next execution time) to
	// e.
	StatusXML(e *element.Element)
}

// TaskListener is notified when a task's output value flips, the
// scheduler-side analogue of objects.ChangeListener decoupled from the
// Object type (spec.md §8's "owner" callback — typically a rule
// evaluating the task's boolean output).
type TaskListener interface {
	OnTaskFired()
}

// Environment is what a task needs from its surroundings: where/when it
// runs and how to enqueue/dequeue itself. Manager implements it
// directly; tests can substitute a fake.
type Environment interface {
	Location() *time.Location
	Exceptions() *ExceptionDays
	AddTask(t Task)
	RemoveTask(t Task)
}
