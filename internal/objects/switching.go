package objects

import (
	"fmt"
	"strings"

	"github.com/stefdude/linknx/internal/element"
)

// Switching is the on/off object variant (EIS1 / KNX DPT 1.xxx).
type Switching struct {
	base
	value bool
}

// NewSwitching creates a Switching object, defaulting to off.
func NewSwitching(id, gad string, init InitPolicy) *Switching {
	return &Switching{base: newBase(id, gad, init)}
}

func normalizeSwitching(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: switching value %q", ErrParse, text)
	}
}

func switchingText(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (o *Switching) Kind() Kind { return KindSwitching }

func (o *Switching) Value() string { return switchingText(o.value) }

// GetBoolValue returns the current value as a bool.
func (o *Switching) GetBoolValue() bool { return o.value }

// SetBoolValue sets the value directly, notifying iff it changed.
func (o *Switching) SetBoolValue(v bool) {
	if v == o.value {
		return
	}
	o.value = v
	o.listeners.notify(o)
}

func (o *Switching) SetValue(text string) error {
	v, err := normalizeSwitching(text)
	if err != nil {
		return err
	}
	o.SetBoolValue(v)
	return nil
}

func (o *Switching) OnWrite(data []byte) error {
	var v bool
	switch {
	case len(data) >= 3:
		v = data[2]&0x01 != 0
	case len(data) >= 2:
		v = data[1]&0x01 != 0
	default:
		return fmt.Errorf("%w: switching onWrite needs 2 bytes, got %d", ErrDecoding, len(data))
	}
	o.SetBoolValue(v)
	return nil
}

func (o *Switching) Equals(v Value) bool {
	return v.Kind == KindSwitching && v.Text == o.Value()
}

func (o *Switching) CreateObjectValue(text string) (Value, error) {
	v, err := normalizeSwitching(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindSwitching, Text: switchingText(v)}, nil
}

func (o *Switching) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindSwitching)
}
