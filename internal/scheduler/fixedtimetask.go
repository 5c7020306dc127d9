package scheduler

import (
	"log/slog"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// FixedTimeTask fires exactly once at a fixed wall-clock instant
// (spec.md §8's one-shot schedule) — no recurrence, no TimeSpec
// resolution, just a single time.Time and an owner to notify.
type FixedTimeTask struct {
	env      Environment
	listener TaskListener
	execTime time.Time
	fn       func(time.Time)
}

// NewFixedTimeTask constructs a one-shot task firing at execTime. fn is
// invoked with the actual firing time when the task runs.
func NewFixedTimeTask(env Environment, execTime time.Time, fn func(time.Time)) *FixedTimeTask {
	return &FixedTimeTask{env: env, execTime: execTime, fn: fn}
}

// ExecTime implements Task.
func (f *FixedTimeTask) ExecTime() time.Time { return f.execTime }

// OnTimer implements Task.
func (f *FixedTimeTask) OnTimer(now time.Time) {
	if f.fn != nil {
		f.fn(now)
	}
}

// Reschedule implements Task: a FixedTimeTask never moves, it is simply
// re-added to the queue if its instant is still in the future (used
// once at startup or after a config reload).
func (f *FixedTimeTask) Reschedule(now time.Time) {
	if now.IsZero() {
		now = time.Now().In(f.env.Location())
	}
	if f.execTime.After(now) {
		slog.Info("fixed-time task rescheduled", "exec_time", f.execTime)
		f.env.AddTask(f)
	} else {
		slog.Info("fixed-time task not rescheduled")
	}
}

// StatusXML implements Task.
func (f *FixedTimeTask) StatusXML(e *element.Element) {
	e.SetAttr("next-exec", f.execTime.Format("2006-01-02 15:04:05"))
}
