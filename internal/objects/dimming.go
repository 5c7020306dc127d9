package objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stefdude/linknx/internal/element"
)

// Dimming is the 4-bit dimming/blind control variant (EIS2 / KNX DPT 3.xxx).
type Dimming struct {
	base
	up   bool
	step uint8 // 0 == stop
}

// NewDimming creates a Dimming object, defaulting to stop.
func NewDimming(id, gad string, init InitPolicy) *Dimming {
	return &Dimming{base: newBase(id, gad, init)}
}

func normalizeDimming(text string) (up bool, step uint8, err error) {
	text = strings.TrimSpace(text)
	if text == "stop" {
		return false, 0, nil
	}
	parts := strings.SplitN(text, ":", 2)
	step = 1
	if len(parts) == 2 {
		n, convErr := strconv.Atoi(parts[1])
		if convErr != nil || n < 1 || n > 7 {
			return false, 0, fmt.Errorf("%w: dimming step %q", ErrParse, text)
		}
		step = uint8(n)
	}
	switch parts[0] {
	case "up":
		return true, step, nil
	case "down":
		return false, step, nil
	default:
		return false, 0, fmt.Errorf("%w: dimming value %q", ErrParse, text)
	}
}

func dimmingText(up bool, step uint8) string {
	if step == 0 {
		return "stop"
	}
	dir := "down"
	if up {
		dir = "up"
	}
	if step == 1 {
		return dir
	}
	return fmt.Sprintf("%s:%d", dir, step)
}

func (o *Dimming) Kind() Kind { return KindDimming }

func (o *Dimming) Value() string { return dimmingText(o.up, o.step) }

func (o *Dimming) setRaw(up bool, step uint8) {
	if up == o.up && step == o.step {
		return
	}
	o.up, o.step = up, step
	o.listeners.notify(o)
}

func (o *Dimming) SetValue(text string) error {
	up, step, err := normalizeDimming(text)
	if err != nil {
		return err
	}
	o.setRaw(up, step)
	return nil
}

func (o *Dimming) OnWrite(data []byte) error {
	var b byte
	switch {
	case len(data) >= 3:
		b = data[2]
	case len(data) >= 2:
		b = data[1]
	default:
		return fmt.Errorf("%w: dimming onWrite needs 2 bytes, got %d", ErrDecoding, len(data))
	}
	up, step := b&0x08 != 0, b&0x07
	if step == 0 {
		// A step of 0 is "stop" whatever the direction bit says.
		up = false
	}
	o.setRaw(up, step)
	return nil
}

func (o *Dimming) Equals(v Value) bool {
	return v.Kind == KindDimming && v.Text == o.Value()
}

func (o *Dimming) CreateObjectValue(text string) (Value, error) {
	up, step, err := normalizeDimming(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindDimming, Text: dimmingText(up, step)}, nil
}

func (o *Dimming) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindDimming)
}
