package objects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stefdude/linknx/internal/element"
)

// Date is the calendar-date variant (EIS4 / KNX DPT 11.xxx).
type Date struct {
	base
	day, month, year int
}

// NewDate creates a Date object at the zero date 0-0-0.
func NewDate(id, gad string, init InitPolicy) *Date {
	return &Date{base: newBase(id, gad, init)}
}

func dateText(day, month, year int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

func normalizeDate(text string) (day, month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: date value %q", ErrParse, text)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: date value %q", ErrParse, text)
		}
		vals[i] = n
	}
	year, month, day = vals[0], vals[1], vals[2]
	if year < 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("%w: date value out of range %q", ErrParse, text)
	}
	return day, month, year, nil
}

func twoDigitYearToFull(y2 int) int {
	if y2 >= 90 {
		return 1900 + y2
	}
	return 2000 + y2
}

func (o *Date) Kind() Kind { return KindDate }

func (o *Date) Value() string { return dateText(o.day, o.month, o.year) }

// GetDate returns the raw (day, month, year) fields.
func (o *Date) GetDate() (day, month, year int) {
	return o.day, o.month, o.year
}

// SetDate sets all three fields directly, notifying iff any differs.
func (o *Date) SetDate(day, month, year int) {
	if day == o.day && month == o.month && year == o.year {
		return
	}
	o.day, o.month, o.year = day, month, year
	o.listeners.notify(o)
}

func (o *Date) SetValue(text string) error {
	if strings.TrimSpace(text) == "now" {
		now := time.Now()
		o.SetDate(now.Day(), int(now.Month()), now.Year())
		return nil
	}
	day, month, year, err := normalizeDate(text)
	if err != nil {
		return err
	}
	o.SetDate(day, month, year)
	return nil
}

func (o *Date) OnWrite(data []byte) error {
	if len(data) < 5 {
		return fmt.Errorf("%w: date onWrite needs 5 bytes, got %d", ErrDecoding, len(data))
	}
	day := int(data[2])
	month := int(data[3])
	year := twoDigitYearToFull(int(data[4]))
	o.SetDate(day, month, year)
	return nil
}

func (o *Date) Equals(v Value) bool {
	return v.Kind == KindDate && v.Text == o.Value()
}

func (o *Date) CreateObjectValue(text string) (Value, error) {
	day, month, year, err := normalizeDate(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindDate, Text: dateText(day, month, year)}, nil
}

func (o *Date) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindDate)
}
