package objects

import "testing"

type recordingListener struct {
	called bool
}

func (l *recordingListener) OnChange(Object) { l.called = true }

func TestSwitchingSetValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"on", "on"}, {"1", "on"}, {"true", "on"},
		{"off", "off"}, {"0", "off"}, {"false", "off"},
	}
	sw := NewSwitching("sw", "", InitDefault)
	for _, tt := range tests {
		if err := sw.SetValue(tt.in); err != nil {
			t.Fatalf("SetValue(%q): %v", tt.in, err)
		}
		if sw.Value() != tt.want {
			t.Errorf("SetValue(%q) -> %q, want %q", tt.in, sw.Value(), tt.want)
		}
	}
}

func TestSwitchingEqualsAndCreateObjectValue(t *testing.T) {
	sw := NewSwitching("sw", "", InitDefault)
	_ = sw.SetValue("on")
	sw2 := NewSwitching("sw2", "", InitDefault)
	_ = sw2.SetValue("off")

	val, err := sw.CreateObjectValue("true")
	if err != nil {
		t.Fatal(err)
	}
	if !sw.Equals(val) {
		t.Error("sw should equal true")
	}
	if sw2.Equals(val) {
		t.Error("sw2 should not equal true")
	}
}

func TestSwitchingOnWrite(t *testing.T) {
	sw := NewSwitching("sw", "", InitDefault)
	sw.SetBoolValue(false)
	l := &recordingListener{}
	sw.AddChangeListener(l)

	buf := []byte{0, 0x81, 0}
	l.called = false
	if err := sw.OnWrite(buf[:2]); err != nil {
		t.Fatal(err)
	}
	if !sw.GetBoolValue() || !l.called {
		t.Errorf("expected true + notify, got value=%v called=%v", sw.GetBoolValue(), l.called)
	}

	buf[1] = 0x80
	l.called = false
	if err := sw.OnWrite(buf[:2]); err != nil {
		t.Fatal(err)
	}
	if sw.GetBoolValue() || !l.called {
		t.Errorf("expected false + notify, got value=%v called=%v", sw.GetBoolValue(), l.called)
	}

	buf[2] = 0x00
	l.called = false
	if err := sw.OnWrite(buf[:3]); err != nil {
		t.Fatal(err)
	}
	if sw.GetBoolValue() || l.called {
		t.Errorf("same value must not renotify, got value=%v called=%v", sw.GetBoolValue(), l.called)
	}

	buf[2] = 0x01
	l.called = false
	if err := sw.OnWrite(buf[:3]); err != nil {
		t.Fatal(err)
	}
	if !sw.GetBoolValue() || !l.called {
		t.Errorf("expected true + notify from long form, got value=%v called=%v", sw.GetBoolValue(), l.called)
	}
}

func TestSwitchingRejectsGarbage(t *testing.T) {
	sw := NewSwitching("sw", "", InitDefault)
	_ = sw.SetValue("on")
	if err := sw.SetValue("maybe"); err == nil {
		t.Fatal("expected ParseError")
	}
	if sw.Value() != "on" {
		t.Errorf("rejected SetValue must leave previous value intact, got %q", sw.Value())
	}
}

func TestSwitchingExportImportRoundTrip(t *testing.T) {
	orig := NewSwitching("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)

	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if res.ID() != orig.ID() {
		t.Errorf("id mismatch: %q != %q", res.ID(), orig.ID())
	}
	if _, ok := res.(*Switching); !ok {
		t.Errorf("expected *Switching, got %T", res)
	}
}
