package scheduler

import (
	"fmt"
	"time"

	"github.com/stefdude/linknx/internal/element"
	"github.com/stefdude/linknx/internal/objects"
	"github.com/stefdude/linknx/internal/sun"
)

// TimeSpec is a partial date/time pattern: any of minute, hour,
// day-of-month, month or year may be left unconstrained (-1), and a
// weekday mask may restrict it to specific days of the week instead of
// day/month/year (spec.md §8). It is the schedule side of a
// PeriodicTask's "at"/"until" fields.
type TimeSpec struct {
	Min, Hour       int // -1 = unconstrained
	Mday, Mon, Year int // -1 = unconstrained; Mon is 0-based (0=January); Year is full (e.g. 2026)
	Wdays           Weekdays
	Exception       ExceptionPolicy
}

// NewTimeSpec returns a TimeSpec with every field unconstrained.
func NewTimeSpec() *TimeSpec {
	return &TimeSpec{Min: -1, Hour: -1, Mday: -1, Mon: -1, Year: -1, Wdays: All, Exception: DontCare}
}

// getDay returns the day/month/year/weekday constraint fields. Overridden
// by VariableTimeSpec to pull missing fields from a live Date object.
func (t *TimeSpec) getDay() (mday, mon, year int, wdays Weekdays) {
	return t.Mday, t.Mon, t.Year, t.Wdays
}

// getTime returns the minute/hour constraint fields. Overridden by
// VariableTimeSpec (live TimeOfDay object) and the solar variants
// (computed sunrise/sunset/solar-noon).
func (t *TimeSpec) getTime(mday, mon, year int) (min, hour int) {
	return t.Min, t.Hour
}

func (t *TimeSpec) getExceptionPolicy() ExceptionPolicy { return t.Exception }

// importXML loads the common min/hour/day/month/year/wdays/exception
// attributes shared by every TimeSpec variant. The wire "month" attribute
// is 1-12; it is converted to the 0-based internal representation here.
func (t *TimeSpec) importXML(e *element.Element) {
	t.Year = intAttrOr(e, "year", -1)
	t.Mon = intAttrOr(e, "month", -1)
	if t.Mon >= 0 {
		t.Mon--
	}
	t.Mday = intAttrOr(e, "day", -1)
	t.Hour = intAttrOr(e, "hour", -1)
	t.Min = intAttrOr(e, "min", -1)
	t.Wdays = ParseWeekdays(e.Attr("wdays"))
	t.Exception = ParseExceptionPolicy(e.Attr("exception"))
}

func (t *TimeSpec) exportXML(e *element.Element) {
	if t.Hour != -1 {
		setIntAttr(e, "hour", t.Hour)
	}
	if t.Min != -1 {
		setIntAttr(e, "min", t.Min)
	}
	if t.Mday != -1 {
		setIntAttr(e, "day", t.Mday)
	}
	if t.Mon != -1 {
		setIntAttr(e, "month", t.Mon+1)
	}
	if t.Year != -1 {
		setIntAttr(e, "year", t.Year)
	}
	if t.Exception != DontCare {
		e.SetAttr("exception", t.Exception.String())
	}
	if t.Wdays != All {
		e.SetAttr("wdays", t.Wdays.String())
	}
}

// scheduleSource is the polymorphic surface findNext actually needs from
// a TimeSpec: plain TimeSpec answers from its own fields; VariableTimeSpec
// and the solar variants substitute live data for the fields their
// owner left unconstrained.
type scheduleSource interface {
	getDay() (mday, mon, year int, wdays Weekdays)
	getTime(mday, mon, year int) (min, hour int)
	getExceptionPolicy() ExceptionPolicy
}

// Create builds a TimeSpec variant from a `<at>`/`<until>`-style
// configuration element (spec.md §8), dispatching on its type
// attribute. listener is the owning task, wired up as a change listener
// on any referenced object so a variable schedule reschedules itself
// when its source object changes.
func Create(e *element.Element, objs *objects.Controller, sites sun.Coordinates, listener objects.ChangeListener) (scheduleSource, error) {
	switch e.Attr("type") {
	case "", "fixed":
		t := NewTimeSpec()
		t.importXML(e)
		return t, nil
	case "variable":
		return newVariableTimeSpec(e, objs, listener)
	case "sunrise":
		return newSolarTimeSpec(e, sunKindSunrise, sites)
	case "sunset":
		return newSolarTimeSpec(e, sunKindSunset, sites)
	case "noon":
		return newSolarTimeSpec(e, sunKindNoon, sites)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, e.Attr("type"))
	}
}

// VariableTimeSpec resolves its minute/hour from a live TimeOfDay object
// and/or its day/month/year from a live Date object whenever the
// TimeSpec itself left that field unconstrained, optionally shifted by a
// fixed offset duration (spec.md §8's "variable" schedule kind).
type VariableTimeSpec struct {
	TimeSpec
	timeObj *objects.TimeOfDay
	dateObj *objects.Date
	offset  time.Duration
}

func newVariableTimeSpec(e *element.Element, objs *objects.Controller, listener objects.ChangeListener) (*VariableTimeSpec, error) {
	v := &VariableTimeSpec{}
	v.TimeSpec = *NewTimeSpec()
	v.importXML(e)

	if id := e.Attr("time"); id != "" {
		obj, err := objs.Get(id)
		if err != nil {
			return nil, err
		}
		tm, ok := obj.(*objects.TimeOfDay)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrWrongObjectType, id)
		}
		v.timeObj = tm
		if listener != nil {
			tm.AddChangeListener(listener)
		}
	}
	if id := e.Attr("date"); id != "" {
		obj, err := objs.Get(id)
		if err != nil {
			return nil, err
		}
		d, ok := obj.(*objects.Date)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrWrongObjectType, id)
		}
		v.dateObj = d
		if listener != nil {
			d.AddChangeListener(listener)
		}
	}
	offsetSecs, err := ParseDuration(e.Attr("offset"))
	if err != nil {
		return nil, err
	}
	v.offset = time.Duration(offsetSecs) * time.Second
	return v, nil
}

// getDay overlays the TimeSpec's own day/month/year/weekday fields with
// data pulled from dateObj/timeObj wherever they were left
// unconstrained, then applies the day component of offset. Matches
// VariableTimeSpec::getDataFromObject: only fields the TimeSpec itself
// left free are substituted, and the offset applies regardless of
// whether the field came from the spec or the object.
func (v *VariableTimeSpec) getDay() (mday, mon, year int, wdays Weekdays) {
	mday, mon, year, wdays = v.TimeSpec.getDay()
	if v.timeObj != nil {
		wday, _, _, _ := v.timeObj.GetTime()
		if wdays == All && wday > 0 {
			wdays = 1 << uint(wday-1)
		}
	}
	if v.dateObj != nil {
		day, month, y := v.dateObj.GetDate()
		if mday == -1 {
			mday = day
		}
		if mon == -1 {
			mon = month - 1
		}
		if year == -1 {
			year = y
		}
	}
	offDay, _, _ := v.offsetParts()
	if mday != -1 {
		mday += offDay
	}
	return mday, mon, year, wdays
}

func (v *VariableTimeSpec) getTime(mday, mon, year int) (min, hour int) {
	min, hour = v.TimeSpec.getTime(mday, mon, year)
	if v.timeObj != nil {
		_, h, m, _ := v.timeObj.GetTime()
		if min == -1 {
			min = m
		}
		if hour == -1 {
			hour = h
		}
	}
	_, offHour, offMin := v.offsetParts()
	if hour != -1 {
		hour += offHour
	}
	if min != -1 {
		min += offMin
	}
	return min, hour
}

func (v *VariableTimeSpec) offsetParts() (day, hour, min int) {
	total := int(v.offset.Seconds())
	min = total / 60
	hour = min / 60
	day = hour / 24
	return day, hour % 24, min % 60
}

func (v *VariableTimeSpec) exportXML(e *element.Element) {
	e.SetAttr("type", "variable")
	v.TimeSpec.exportXML(e)
	if v.timeObj != nil {
		e.SetAttr("time", v.timeObj.ID())
	}
	if v.dateObj != nil {
		e.SetAttr("date", v.dateObj.ID())
	}
	if v.offset != 0 {
		e.SetAttr("offset", FormatDuration(int64(v.offset.Seconds())))
	}
}

type sunKind int

const (
	sunKindSunrise sunKind = iota
	sunKindSunset
	sunKindNoon
)

// solarTimeSpec resolves its minute/hour from the sunrise, sunset or
// solar-noon instant for the site's coordinates on the target date,
// shifted by an optional offset (spec.md §8's sunrise/sunset/noon
// schedule kinds). Day/month/year/weekday constraints behave exactly
// like a plain TimeSpec.
type solarTimeSpec struct {
	TimeSpec
	kind   sunKind
	coords sun.Coordinates
	offset time.Duration
}

func newSolarTimeSpec(e *element.Element, kind sunKind, coords sun.Coordinates) (*solarTimeSpec, error) {
	s := &solarTimeSpec{kind: kind, coords: coords}
	s.TimeSpec = *NewTimeSpec()
	s.importXML(e)
	offsetSecs, err := ParseDuration(e.Attr("offset"))
	if err != nil {
		return nil, err
	}
	s.offset = time.Duration(offsetSecs) * time.Second
	return s, nil
}

func (s *solarTimeSpec) getTime(mday, mon, year int) (min, hour int) {
	if mday == -1 || mon == -1 || year == -1 {
		// Without a resolved calendar date there is nothing to compute
		// sunrise/sunset for yet; findNext always supplies the
		// DateTime's current best guess for mday/mon/year before
		// calling getTime, so this only applies before the first pass.
		return -1, -1
	}
	date := time.Date(year, time.Month(mon+1), mday, 12, 0, 0, 0, time.Local)
	var t time.Time
	var ok bool
	switch s.kind {
	case sunKindSunrise:
		t, ok = sun.Sunrise(date, s.coords, time.Local)
	case sunKindSunset:
		t, ok = sun.Sunset(date, s.coords, time.Local)
	default:
		t, ok = sun.SolarNoon(date, s.coords, time.Local), true
	}
	if !ok {
		return -1, -1
	}
	t = t.Add(s.offset)
	return t.Minute(), t.Hour()
}

func (s *solarTimeSpec) exportXML(e *element.Element) {
	switch s.kind {
	case sunKindSunrise:
		e.SetAttr("type", "sunrise")
	case sunKindSunset:
		e.SetAttr("type", "sunset")
	default:
		e.SetAttr("type", "noon")
	}
	s.TimeSpec.exportXML(e)
	if s.offset != 0 {
		e.SetAttr("offset", FormatDuration(int64(s.offset.Seconds())))
	}
}
