package objects

import (
	"fmt"
	"strings"

	"github.com/stefdude/linknx/internal/element"
)

// HeatingMode is the four-state HVAC mode variant (heat-mode / KNX
// DPT 20.102-style 1-byte controller mode).
type HeatingMode struct {
	base
	value uint8 // 1=comfort, 2=standby, 3=night, 4=frost; 0 = unset
}

// NewHeatingMode creates a HeatingMode object with no mode set.
func NewHeatingMode(id, gad string, init InitPolicy) *HeatingMode {
	return &HeatingMode{base: newBase(id, gad, init)}
}

var heatingModeWords = map[string]uint8{
	"comfort": 1,
	"standby": 2,
	"night":   3,
	"frost":   4,
}

var heatingModeNames = map[uint8]string{
	1: "comfort",
	2: "standby",
	3: "night",
	4: "frost",
}

// normalizeHeatingMode accepts only the four canonical words — unlike the
// other integer-backed variants, numeric text is rejected even when the
// number names a valid mode, per the ObjectTest fixture this variant is
// grounded on.
func normalizeHeatingMode(text string) (uint8, error) {
	v, ok := heatingModeWords[strings.TrimSpace(text)]
	if !ok {
		return 0, fmt.Errorf("%w: heating mode value %q", ErrParse, text)
	}
	return v, nil
}

func (o *HeatingMode) Kind() Kind { return KindHeatingMode }

func (o *HeatingMode) Value() string { return heatingModeNames[o.value] }

// GetIntValue returns the raw 1-4 mode code (0 if unset).
func (o *HeatingMode) GetIntValue() int { return int(o.value) }

// SetIntValue sets the raw mode code directly, notifying iff it changed.
// Values outside 1-4 are ignored (mirrors onWrite's bus-decode tolerance).
func (o *HeatingMode) SetIntValue(v uint8) {
	if _, ok := heatingModeNames[v]; !ok {
		return
	}
	if v == o.value {
		return
	}
	o.value = v
	o.listeners.notify(o)
}

func (o *HeatingMode) SetValue(text string) error {
	v, err := normalizeHeatingMode(text)
	if err != nil {
		return err
	}
	o.SetIntValue(v)
	return nil
}

func (o *HeatingMode) OnWrite(data []byte) error {
	if len(data) < 3 {
		return fmt.Errorf("%w: heating mode onWrite needs 3 bytes, got %d", ErrDecoding, len(data))
	}
	o.SetIntValue(data[2])
	return nil
}

func (o *HeatingMode) Equals(v Value) bool {
	return v.Kind == KindHeatingMode && v.Text == o.Value()
}

func (o *HeatingMode) CreateObjectValue(text string) (Value, error) {
	v, err := normalizeHeatingMode(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindHeatingMode, Text: heatingModeNames[v]}, nil
}

func (o *HeatingMode) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindHeatingMode)
}
