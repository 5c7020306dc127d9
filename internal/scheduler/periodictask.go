package scheduler

import (
	"log/slog"
	"time"

	"github.com/stefdude/linknx/internal/element"
	"github.com/stefdude/linknx/internal/objects"
)

// PeriodicTask drives a recurring boolean on/off output between two
// schedule sources (spec.md §8): it turns on at "at" (or after a fixed
// delay from now) and off at "until" (or after a fixed duration), or —
// when neither "until" nor a duration applies — toggles instantaneously
// each time "at" fires.
//
// duringSec == -1 means "use the until schedule" instead of a fixed
// duration; duringSec == 0 means an instantaneous toggle (on then
// immediately off again); any other value is a fixed on-duration.
// afterSec == -1 means "use the at schedule" instead of a fixed delay.
type PeriodicTask struct {
	env      Environment
	listener TaskListener

	at, until scheduleSource
	duringSec int64
	afterSec  int64

	nextExec time.Time
	value    bool
}

// NewPeriodicTask constructs a PeriodicTask. at may be nil only if
// afterSec != -1; until may be nil only if duringSec != -1.
func NewPeriodicTask(env Environment, at, until scheduleSource, duringSec, afterSec int64, listener TaskListener) *PeriodicTask {
	return &PeriodicTask{
		env: env, listener: listener,
		at: at, until: until,
		duringSec: duringSec, afterSec: afterSec,
	}
}

// ExecTime implements Task.
func (p *PeriodicTask) ExecTime() time.Time { return p.nextExec }

// Value reports the task's current on/off output.
func (p *PeriodicTask) Value() bool { return p.value }

// OnTimer implements Task: flips the output and notifies the owner,
// collapsing back off immediately for the instantaneous-toggle case
// (duringSec == 0).
func (p *PeriodicTask) OnTimer(now time.Time) {
	p.value = !p.value
	if p.listener != nil {
		p.listener.OnTaskFired()
	}
	if p.duringSec == 0 && p.value {
		p.value = false
		if p.listener != nil {
			p.listener.OnTaskFired()
		}
	}
}

// OnChange implements objects.ChangeListener: fires when a
// VariableTimeSpec's underlying object changes, forcing an immediate
// reschedule from the current wall-clock time.
func (p *PeriodicTask) OnChange(objects.Object) {
	p.env.RemoveTask(p)
	p.Reschedule(time.Time{})
}

// Reschedule implements Task.
func (p *PeriodicTask) Reschedule(now time.Time) {
	if now.IsZero() {
		now = time.Now().In(p.env.Location())
	}

	var next time.Time
	switch {
	case p.nextExec.IsZero() && p.duringSec != 0:
		// First schedule: work out whether we're already inside an "on"
		// window (stop < start means the on-period already started).
		var start, stop time.Time
		if p.duringSec != -1 {
			if p.afterSec == -1 {
				base := now.Add(-time.Duration(p.duringSec) * time.Second)
				stop = p.findNext(base, p.at).Add(time.Duration(p.duringSec) * time.Second)
			} else {
				stop = now.Add(time.Duration(p.duringSec) * time.Second)
			}
		} else {
			stop = p.findNext(now, p.until)
		}

		if p.afterSec != -1 {
			start = now.Add(time.Duration(p.afterSec) * time.Second)
		} else {
			start = p.findNext(now, p.at)
		}

		if stop.Before(start) {
			p.value = true
			next = stop
		} else {
			p.value = false
			next = start
		}
	case p.value:
		if p.duringSec != -1 {
			next = now.Add(time.Duration(p.duringSec) * time.Second)
		} else {
			next = p.findNext(now, p.until)
		}
	default:
		if p.afterSec != -1 {
			next = now.Add(time.Duration(p.afterSec) * time.Second)
		} else {
			next = p.findNext(now, p.at)
		}
	}

	p.nextExec = next
	if !next.IsZero() {
		slog.Info("periodic task rescheduled", "next_exec", next)
		p.env.AddTask(p)
	} else {
		slog.Info("periodic task not rescheduled")
	}
}

// findNext resolves the next instant matching next strictly after start
// (the search begins at start plus one minute), recursing past exception-day mismatches. Returns the zero Time when
// no reachable schedule exists (next is nil, weekday mask unreachable,
// or constraints leave nothing free to carry into).
func (p *PeriodicTask) findNext(start time.Time, next scheduleSource) time.Time {
	if next == nil {
		slog.Info("no more schedule available")
		return time.Time{}
	}

	t1 := start.Add(time.Minute)
	current := newDateTime(t1)
	target := newDateTime(t1)

	mday, mon, year, wdays := next.getDay()
	if wdays != All {
		year, mon, mday = -1, -1, -1
	}
	target.setField(fieldYear, year)
	target.setField(fieldMonth, mon)
	target.setField(fieldDay, mday)

	if wdays == All {
		if !target.tryResolve(current, fieldYear, fieldDay) {
			slog.Info("no more schedule available")
			return time.Time{}
		}
	} else {
		if target.time().Before(current.time()) {
			target.increaseField(fieldDay)
		}
		wd := goWeekdayBit(int(target.time().Weekday()))
		for wdays&wd == 0 {
			if target.increaseField(fieldDay) > 40 {
				slog.Info("wrong weekday specification")
				return time.Time{}
			}
			wd = goWeekdayBit(int(target.time().Weekday()))
		}
	}

	min, hour := next.getTime(target.getField(fieldDay), target.getField(fieldMonth), target.getField(fieldYear))
	target.setField(fieldHour, hour)
	target.setField(fieldMinute, min)
	if !target.tryResolve(current, fieldHour, fieldMinute) {
		slog.Info("no more schedule available")
		return time.Time{}
	}

	nextExecTime := target.time()
	if !nextExecTime.After(start) {
		slog.Error("timer error: computed time is not after start time", "next_exec", nextExecTime, "start", start)
		return time.Time{}
	}

	if policy := next.getExceptionPolicy(); policy != DontCare {
		isException := p.env.Exceptions().IsException(nextExecTime)
		if (isException && policy == No) || (!isException && policy == Yes) {
			// Fast-forward to 23:59 the same day so the next pass moves
			// to the following day.
			y, m, d := nextExecTime.Date()
			endOfDay := time.Date(y, m, d, 23, 59, 0, 0, nextExecTime.Location())
			return p.findNext(endOfDay, next)
		}
	}

	return nextExecTime
}

// StatusXML implements Task.
func (p *PeriodicTask) StatusXML(e *element.Element) {
	if !p.nextExec.IsZero() {
		e.SetAttr("next-exec", p.nextExec.Format("2006-01-02 15:04:05"))
	}
}
