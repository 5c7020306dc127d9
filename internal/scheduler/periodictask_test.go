package scheduler

import (
	"testing"
	"time"
)

func testLoc() *time.Location { return time.UTC }

func TestFindNextSimpleHourMinute(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	task := NewPeriodicTask(mgr, nil, nil, 0, -1, nil)

	spec := NewTimeSpec()
	spec.Hour, spec.Min = 14, 30

	start := time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)
	got := task.findNext(start, spec)
	want := time.Date(2026, 8, 3, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("findNext() = %v, want %v", got, want)
	}

	// Past the target time the same day: should roll to tomorrow.
	start2 := time.Date(2026, 8, 3, 15, 0, 0, 0, time.UTC)
	got2 := task.findNext(start2, spec)
	want2 := time.Date(2026, 8, 4, 14, 30, 0, 0, time.UTC)
	if !got2.Equal(want2) {
		t.Errorf("findNext() after target = %v, want %v", got2, want2)
	}
}

func TestFindNextMonotonicAfterStart(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	task := NewPeriodicTask(mgr, nil, nil, 0, -1, nil)
	spec := NewTimeSpec()
	spec.Hour, spec.Min = 0, 0

	start := time.Date(2026, 8, 3, 23, 59, 0, 0, time.UTC)
	got := task.findNext(start, spec)
	if !got.After(start) {
		t.Errorf("findNext() = %v must be after start %v", got, start)
	}
}

func TestFindNextWeekdayMask(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	task := NewPeriodicTask(mgr, nil, nil, 0, -1, nil)
	spec := NewTimeSpec()
	spec.Hour, spec.Min = 9, 0
	spec.Wdays = Wed // 2026-08-03 is a Monday; next Wednesday is 2026-08-05

	start := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	got := task.findNext(start, spec)
	want := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("findNext() = %v, want %v", got, want)
	}
	if got.Weekday() != time.Wednesday {
		t.Errorf("resolved date %v is not a Wednesday", got)
	}
}

func TestFindNextNilSpec(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	task := NewPeriodicTask(mgr, nil, nil, 0, -1, nil)
	got := task.findNext(time.Now(), nil)
	if !got.IsZero() {
		t.Errorf("findNext(nil) = %v, want zero", got)
	}
}

func TestFindNextSkipsExceptionDay(t *testing.T) {
	exceptions := NewExceptionDays()
	exceptions.AddDay(DaySpec{Year: 2026, Month: 8, Day: 4})
	mgr := NewManager(testLoc(), exceptions)
	task := NewPeriodicTask(mgr, nil, nil, 0, -1, nil)

	spec := NewTimeSpec()
	spec.Hour, spec.Min = 9, 0
	spec.Exception = No // must NOT fall on an exception day

	start := time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC) // next naive hit would be 2026-08-04
	got := task.findNext(start, spec)
	want := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("findNext() = %v, want %v (skipping exception day)", got, want)
	}
}

type fakeListener struct{ fired int }

func (f *fakeListener) OnTaskFired() { f.fired++ }

func TestPeriodicTaskInstantToggle(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	l := &fakeListener{}
	spec := NewTimeSpec()
	spec.Hour, spec.Min = 9, 0
	task := NewPeriodicTask(mgr, spec, nil, 0, -1, l)

	task.Reschedule(time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC))
	if task.ExecTime().IsZero() {
		t.Fatal("expected a scheduled exec time")
	}

	task.OnTimer(task.ExecTime())
	if l.fired != 2 {
		t.Errorf("instant toggle should fire listener twice (on then off), got %d", l.fired)
	}
	if task.Value() {
		t.Error("instant toggle should settle back to off")
	}
}

func TestPeriodicTaskDuringWindow(t *testing.T) {
	mgr := NewManager(testLoc(), NewExceptionDays())
	at := NewTimeSpec()
	at.Hour, at.Min = 9, 0
	task := NewPeriodicTask(mgr, at, nil, 1800, -1, nil) // on for 30 minutes from 9:00

	// Before the window: next exec should be the 9:00 start, value off.
	task.Reschedule(time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC))
	if task.Value() {
		t.Error("expected off before window start")
	}
	want := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	if !task.ExecTime().Equal(want) {
		t.Errorf("ExecTime() = %v, want %v", task.ExecTime(), want)
	}
}
