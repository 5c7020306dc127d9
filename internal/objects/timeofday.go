package objects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// TimeOfDay is the time-of-day variant (EIS3 / KNX DPT 10.xxx).
type TimeOfDay struct {
	base
	wday           int // 0 = unset, 1..7 = Mon..Sun
	hour, min, sec int
}

// NewTimeOfDay creates a TimeOfDay object at 0:0:0 with an unset weekday.
func NewTimeOfDay(id, gad string, init InitPolicy) *TimeOfDay {
	return &TimeOfDay{base: newBase(id, gad, init)}
}

func timeOfDayText(h, m, s int) string {
	return fmt.Sprintf("%d:%d:%d", h, m, s)
}

func normalizeTimeOfDay(text string) (h, m, s int, err error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: time value %q", ErrParse, text)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: time value %q", ErrParse, text)
		}
		vals[i] = n
	}
	h, m, s = vals[0], vals[1], vals[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, fmt.Errorf("%w: time value out of range %q", ErrParse, text)
	}
	return h, m, s, nil
}

func (o *TimeOfDay) Kind() Kind { return KindTimeOfDay }

func (o *TimeOfDay) Value() string { return timeOfDayText(o.hour, o.min, o.sec) }

// GetTime returns the raw (weekday, hour, minute, second) fields.
func (o *TimeOfDay) GetTime() (wday, hour, min, sec int) {
	return o.wday, o.hour, o.min, o.sec
}

// SetTime sets all four fields directly, notifying iff any differs.
func (o *TimeOfDay) SetTime(wday, hour, min, sec int) {
	if wday == o.wday && hour == o.hour && min == o.min && sec == o.sec {
		return
	}
	o.wday, o.hour, o.min, o.sec = wday, hour, min, sec
	o.listeners.notify(o)
}

func (o *TimeOfDay) SetValue(text string) error {
	if strings.TrimSpace(text) == "now" {
		now := time.Now()
		wday := int(now.Weekday())
		if wday == 0 {
			wday = 7 // Sunday is 7, Monday is 1, matching the Mon..Sun mask numbering
		}
		if o.wday == wday && o.hour == now.Hour() && o.min == now.Minute() && o.sec == now.Second() {
			return nil
		}
		o.wday, o.hour, o.min, o.sec = wday, now.Hour(), now.Minute(), now.Second()
		o.listeners.notify(o)
		return nil
	}
	h, m, s, err := normalizeTimeOfDay(text)
	if err != nil {
		return err
	}
	if h == o.hour && m == o.min && s == o.sec {
		return nil
	}
	o.hour, o.min, o.sec = h, m, s
	o.listeners.notify(o)
	return nil
}

func (o *TimeOfDay) OnWrite(data []byte) error {
	if len(data) < 5 {
		return fmt.Errorf("%w: time onWrite needs 5 bytes, got %d", ErrDecoding, len(data))
	}
	wday := int(data[2] >> 5)
	hour := int(data[2] & 0x1F)
	min := int(data[3])
	sec := int(data[4])
	if wday == o.wday && hour == o.hour && min == o.min && sec == o.sec {
		return nil
	}
	o.wday, o.hour, o.min, o.sec = wday, hour, min, sec
	o.listeners.notify(o)
	return nil
}

func (o *TimeOfDay) Equals(v Value) bool {
	return v.Kind == KindTimeOfDay && v.Text == o.Value()
}

func (o *TimeOfDay) CreateObjectValue(text string) (Value, error) {
	h, m, s, err := normalizeTimeOfDay(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindTimeOfDay, Text: timeOfDayText(h, m, s)}, nil
}

func (o *TimeOfDay) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindTimeOfDay)
}
