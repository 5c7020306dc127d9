package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// CheckInterval is how long the Run loop should wait before its next
// checkTaskList pass — mirrors TimerManager::Run's three-tier sleep (10s
// while the queue is empty, 1s while the head task is not yet due,
// immediately after firing a task).
type CheckInterval int

const (
	Long      CheckInterval = iota // queue empty: sleep long
	Short                          // head task not yet due: sleep short
	Immediate                      // a task just fired: check again right away
)

// Manager is the process-wide sorted task queue and its run loop
// (spec.md §8's scheduler core), grounded on TimerManager. Tasks are
// kept in ascending ExecTime order; Run repeatedly pops and fires due
// tasks, re-checking the list's head identity before removing it in
// case firing the task mutated the queue itself (a VariableTimeSpec
// reschedule triggered from within OnTimer, for instance).
type Manager struct {
	mu   sync.Mutex
	list []Task

	loc        *time.Location
	exceptions *ExceptionDays
}

// NewManager returns an empty Manager. loc is the wall-clock timezone
// every TimeSpec resolves against; exceptions is the shared holiday
// calendar.
func NewManager(loc *time.Location, exceptions *ExceptionDays) *Manager {
	if loc == nil {
		loc = time.Local
	}
	return &Manager{loc: loc, exceptions: exceptions}
}

// Location implements Environment.
func (m *Manager) Location() *time.Location { return m.loc }

// Exceptions implements Environment.
func (m *Manager) Exceptions() *ExceptionDays { return m.exceptions }

// AddTask implements Environment: inserts t keeping the queue sorted by
// ExecTime ascending.
func (m *Manager) AddTask(t Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec := t.ExecTime()
	i := 0
	for i < len(m.list) && !exec.Before(m.list[i].ExecTime()) {
		i++
	}
	m.list = append(m.list, nil)
	copy(m.list[i+1:], m.list[i:])
	m.list[i] = t
}

// RemoveTask implements Environment: drops the first occurrence of t,
// if present.
func (m *Manager) RemoveTask(t Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, x := range m.list {
		if x == t {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return
		}
	}
}

// checkTaskList fires the head task if it is due, matching
// TimerManager::checkTaskList: a task up to 60s overdue still fires (and
// is logged as on-time); one overdue by more than a minute is skipped
// entirely as clock-skew/load fallout rather than fired late. The head
// is only popped if it is still the head after OnTimer returns — a
// listener that rescheduled itself (or others) from inside OnTimer may
// have already changed what belongs at the front.
func (m *Manager) checkTaskList(now time.Time) CheckInterval {
	m.mu.Lock()
	if len(m.list) == 0 {
		m.mu.Unlock()
		return Long
	}
	first := m.list[0]
	m.mu.Unlock()

	nextExec := first.ExecTime()
	if nextExec.After(now) {
		return Short
	}

	if nextExec.After(now.Add(-60 * time.Second)) {
		slog.Info("task execution", "exec_time", nextExec)
		first.OnTimer(now)
	} else {
		slog.Warn("task skipped due to clock skew or heavy load", "exec_time", nextExec)
	}

	m.mu.Lock()
	stillHead := len(m.list) > 0 && m.list[0] == first
	if stillHead {
		m.list = m.list[1:]
	}
	m.mu.Unlock()

	if stillHead {
		first.Reschedule(now)
	}
	return Immediate
}

// Run drives the check loop until ctx is cancelled, sleeping 10s when
// the queue is empty, 1s when the head task is not yet due, and looping
// immediately after firing one.
func (m *Manager) Run(ctx context.Context) {
	slog.Debug("starting scheduler loop")
	for {
		interval := m.checkTaskList(time.Now().In(m.loc))
		var wait time.Duration
		switch interval {
		case Immediate:
			wait = 0
		case Short:
			wait = time.Second
		default:
			wait = 10 * time.Second
		}
		if wait == 0 {
			select {
			case <-ctx.Done():
				slog.Debug("scheduler loop stopped")
				return
			default:
				continue
			}
		}
		select {
		case <-ctx.Done():
			slog.Debug("scheduler loop stopped")
			return
		case <-time.After(wait):
		}
	}
}

// StatusXML appends one `<task>` element per queued task to pStatus.
func (m *Manager) StatusXML(pStatus *element.Element) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.list {
		e := element.New("task")
		t.StatusXML(e)
		pStatus.AddChild(e)
	}
}

// Len returns the number of queued tasks, chiefly for tests.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.list)
}
