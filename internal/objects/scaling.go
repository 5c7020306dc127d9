package objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stefdude/linknx/internal/element"
)

// Scaling is the 8-bit raw integer variant (EIS6 / KNX DPT 5.xxx, taken
// as a raw 0-255 byte rather than a percentage scaling).
type Scaling struct {
	base
	value uint8
}

// NewScaling creates a Scaling object at 0.
func NewScaling(id, gad string, init InitPolicy) *Scaling {
	return &Scaling{base: newBase(id, gad, init)}
}

func normalizeScaling(text string) (uint8, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: scaling value %q", ErrParse, text)
	}
	return uint8(n), nil
}

func (o *Scaling) Kind() Kind { return KindScaling }

func (o *Scaling) Value() string { return strconv.Itoa(int(o.value)) }

// GetIntValue returns the raw 0-255 value.
func (o *Scaling) GetIntValue() int { return int(o.value) }

// SetIntValue sets the value directly, notifying iff it changed.
func (o *Scaling) SetIntValue(v uint8) {
	if v == o.value {
		return
	}
	o.value = v
	o.listeners.notify(o)
}

func (o *Scaling) SetValue(text string) error {
	v, err := normalizeScaling(text)
	if err != nil {
		return err
	}
	o.SetIntValue(v)
	return nil
}

func (o *Scaling) OnWrite(data []byte) error {
	if len(data) < 3 {
		return fmt.Errorf("%w: scaling onWrite needs 3 bytes, got %d", ErrDecoding, len(data))
	}
	o.SetIntValue(data[2])
	return nil
}

func (o *Scaling) Equals(v Value) bool {
	return v.Kind == KindScaling && v.Text == o.Value()
}

func (o *Scaling) CreateObjectValue(text string) (Value, error) {
	v, err := normalizeScaling(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindScaling, Text: strconv.Itoa(int(v))}, nil
}

func (o *Scaling) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindScaling)
}
