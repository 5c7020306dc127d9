package scheduler

import "time"

// field identifies one component of a dateTime, in most-to-least
// significant order — the order findNext resolves constraints in.
type field int

const (
	invalidField field = -1
	fieldYear    field = 0
	fieldMonth   field = 1 // 0-based, like time.Month-1
	fieldDay     field = 2
	fieldHour    field = 3
	fieldMinute  field = 4
)

// dateTime is the mutable calendar/time-of-day value findNext resolves
// a schedule against, mirroring the original's DateTime helper: each
// field can be "free" (unconstrained, adopts whatever the walk settles
// on) or fixed (pinned by the TimeSpec being resolved).
//
// Like the original's resetFieldIfFree cascade, setting a field to a
// value snaps every less significant free field to its default
// (month/hour/minute -> 0, day -> 1), so a field that moves forward
// lands on the earliest instant of that unit. Marking a field free
// (value -1) leaves the stored values untouched.
type dateTime struct {
	fields [5]int
	free   uint8
	loc    *time.Location
}

func newDateTime(t time.Time) dateTime {
	return dateTime{
		fields: [5]int{t.Year(), int(t.Month()) - 1, t.Day(), t.Hour(), t.Minute()},
		free:   0x1F,
		loc:    t.Location(),
	}
}

func (d *dateTime) isFree(f field) bool { return d.free&(1<<uint(f)) != 0 }

func (d *dateTime) setField(f field, value int) {
	if value == -1 {
		d.free |= 1 << uint(f)
		return
	}
	d.free &^= 1 << uint(f)
	d.fields[f] = value
	for g := f + 1; g <= fieldMinute; g++ {
		if d.isFree(g) {
			d.fields[g] = 0
			if g == fieldDay {
				d.fields[g] = 1
			}
		}
	}
}

func (d *dateTime) getField(f field) int { return d.fields[f] }

// searchClosestGreaterFreeField walks from current towards Year looking
// for the nearest free field, returning invalidField if none is found.
func (d *dateTime) searchClosestGreaterFreeField(current field) field {
	for current > invalidField && !d.isFree(current) {
		current--
	}
	return current
}

// increaseField bumps fieldId by one and fixes it, returning the new
// value.
func (d *dateTime) increaseField(f field) int {
	d.fields[f]++
	d.setField(f, d.fields[f])
	return d.fields[f]
}

// time renders the fields as a concrete instant in loc, letting
// out-of-range components (month 13, day 32, ...) normalize the way
// mktime would.
func (d *dateTime) time() time.Time {
	return time.Date(d.fields[fieldYear], time.Month(d.fields[fieldMonth]+1), d.fields[fieldDay],
		d.fields[fieldHour], d.fields[fieldMinute], 0, 0, d.loc)
}

// tryResolve walks fields from..to, nudging the receiver forward past
// current wherever it would otherwise be in the past: free fields
// simply adopt current's value; fixed fields that are already too small
// force a carry into the nearest enclosing free field instead. The walk
// stops as soon as the receiver is already later than current at some
// field, including the fields more significant than from. Returns
// false if no free field is available to absorb the carry.
func (d *dateTime) tryResolve(current dateTime, from, to field) bool {
	for f := fieldYear; f < from; f++ {
		if d.getField(f) > current.getField(f) {
			return true
		}
		if d.getField(f) < current.getField(f) {
			break
		}
	}
	for f := from; f <= to; f++ {
		targetField := d.getField(f)
		currentField := current.getField(f)
		if targetField > currentField {
			break
		}
		if targetField < currentField {
			if d.isFree(f) {
				d.setField(f, currentField)
			} else {
				closest := d.searchClosestGreaterFreeField(f)
				if closest == invalidField {
					return false
				}
				d.increaseField(closest)
				break
			}
		}
	}
	return true
}
