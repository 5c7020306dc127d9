package objects

import (
	"fmt"
	"strings"

	"github.com/stefdude/linknx/internal/element"
)

// maxStringLen is the fixed wire width of the 14-character string
// variant (EIS15 / KNX DPT 16.000).
const maxStringLen = 14

// StringValue is the short fixed-width ASCII string variant.
type StringValue struct {
	base
	value string
}

// NewStringValue creates a StringValue object at "".
func NewStringValue(id, gad string, init InitPolicy) *StringValue {
	return &StringValue{base: newBase(id, gad, init)}
}

func normalizeStringValue(text string) (string, error) {
	if len(text) > maxStringLen {
		return "", fmt.Errorf("%w: string value exceeds %d bytes: %q", ErrParse, maxStringLen, text)
	}
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return "", fmt.Errorf("%w: string value is not ASCII: %q", ErrParse, text)
		}
	}
	return text, nil
}

func (o *StringValue) Kind() Kind { return KindString }

func (o *StringValue) Value() string { return o.value }

func (o *StringValue) setRaw(v string) {
	if v == o.value {
		return
	}
	o.value = v
	o.listeners.notify(o)
}

func (o *StringValue) SetValue(text string) error {
	v, err := normalizeStringValue(text)
	if err != nil {
		return err
	}
	o.setRaw(v)
	return nil
}

func (o *StringValue) OnWrite(data []byte) error {
	if len(data) < 2+maxStringLen {
		return fmt.Errorf("%w: string onWrite needs %d bytes, got %d", ErrDecoding, 2+maxStringLen, len(data))
	}
	window := data[2 : 2+maxStringLen]
	if nul := strings.IndexByte(string(window), 0); nul >= 0 {
		window = window[:nul]
	}
	o.setRaw(string(window))
	return nil
}

func (o *StringValue) Equals(v Value) bool {
	return v.Kind == KindString && v.Text == o.Value()
}

func (o *StringValue) CreateObjectValue(text string) (Value, error) {
	v, err := normalizeStringValue(text)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindString, Text: v}, nil
}

func (o *StringValue) ExportXML(e *element.Element) {
	o.exportXMLCommon(e, KindString)
}
