package scheduler

import "errors"

var (
	// ErrParse is returned when a textual duration/attribute cannot be
	// parsed.
	ErrParse = errors.New("scheduler: parse error")
	// ErrUnsupportedType is returned by Create for an unrecognised
	// TimeSpec type attribute.
	ErrUnsupportedType = errors.New("scheduler: unsupported timespec type")
	// ErrWrongObjectType is returned when a <variable> TimeSpec's time
	// or date attribute names an object of the wrong kind.
	ErrWrongObjectType = errors.New("scheduler: wrong object type for variable timespec")
	// ErrNotFound is returned by Manager lookups for an unknown task.
	ErrNotFound = errors.New("scheduler: not found")
	// ErrNoSchedule names the case where findNext cannot resolve a
	// reachable future time (unsatisfiable weekday mask, exhausted
	// constraints). findNext itself reports that case by returning the
	// zero Time, not this error; callers observe it as a task simply
	// never being rescheduled.
	ErrNoSchedule = errors.New("scheduler: no schedule available")
)
