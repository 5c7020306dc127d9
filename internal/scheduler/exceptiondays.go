package scheduler

import (
	"sync"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// ExceptionPolicy controls whether a TimeSpec additionally requires (or
// forbids) its resolved date to be a configured exception day (public
// holidays, plant shutdowns, ...).
type ExceptionPolicy int

const (
	DontCare ExceptionPolicy = iota
	Yes
	No
)

// ParseExceptionPolicy decodes the `exception="yes|no"` attribute,
// defaulting to DontCare for any other text.
func ParseExceptionPolicy(text string) ExceptionPolicy {
	switch text {
	case "yes", "true":
		return Yes
	case "no", "false":
		return No
	default:
		return DontCare
	}
}

func (p ExceptionPolicy) String() string {
	switch p {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return ""
	}
}

// DaySpec names a single calendar day, with any of year/month/day left
// as -1 to wildcard that field (e.g. month=-1,day=25 matches the 25th of
// every month).
type DaySpec struct {
	Year, Month, Day int // Month is 1-12; -1 means "any"
}

// Matches reports whether t falls on this day, per field wildcarding.
func (d DaySpec) Matches(t time.Time) bool {
	return (d.Year == -1 || d.Year == t.Year()) &&
		(d.Month == -1 || d.Month == int(t.Month())) &&
		(d.Day == -1 || d.Day == t.Day())
}

func (d DaySpec) importXML(e *element.Element) DaySpec {
	d.Year = intAttrOr(e, "year", -1)
	d.Month = intAttrOr(e, "month", -1)
	d.Day = intAttrOr(e, "day", -1)
	return d
}

func (d DaySpec) exportXML(e *element.Element) {
	if d.Day != -1 {
		setIntAttr(e, "day", d.Day)
	}
	if d.Month != -1 {
		setIntAttr(e, "month", d.Month)
	}
	if d.Year != -1 {
		setIntAttr(e, "year", d.Year)
	}
}

// ExceptionDays is the process-wide calendar of exception days
// referenced by every TimeSpec with a non-DontCare ExceptionPolicy.
type ExceptionDays struct {
	mu   sync.RWMutex
	days []DaySpec
}

// NewExceptionDays returns an empty calendar.
func NewExceptionDays() *ExceptionDays {
	return &ExceptionDays{}
}

// IsException reports whether t falls on any configured exception day.
func (e *ExceptionDays) IsException(t time.Time) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, d := range e.days {
		if d.Matches(t) {
			return true
		}
	}
	return false
}

// AddDay appends a day to the calendar.
func (e *ExceptionDays) AddDay(d DaySpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.days = append(e.days, d)
}

// RemoveDay removes the first day equal to d, if present.
func (e *ExceptionDays) RemoveDay(d DaySpec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, x := range e.days {
		if x == d {
			e.days = append(e.days[:i], e.days[i+1:]...)
			return
		}
	}
}

// Clear empties the calendar.
func (e *ExceptionDays) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.days = nil
}

// ImportXML loads `<date .../>` children of pConfig, honouring
// `clear="true"` to reset the calendar before adding the new entries
// (mirrors ExceptionDays::importXml).
func (e *ExceptionDays) ImportXML(pConfig *element.Element) {
	if pConfig.Attr("clear") == "true" {
		e.Clear()
	}
	for _, child := range pConfig.ChildrenByTag("date") {
		e.AddDay(DaySpec{}.importXML(child))
	}
}

// ExportXML appends one `<date>` element per configured day to pConfig.
func (e *ExceptionDays) ExportXML(pConfig *element.Element) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, d := range e.days {
		child := element.New("date")
		d.exportXML(child)
		pConfig.AddChild(child)
	}
}
