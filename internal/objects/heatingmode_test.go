package objects

import "testing"

func TestHeatingModeSetValue(t *testing.T) {
	hm := NewHeatingMode("hm", "", InitDefault)
	tests := []struct {
		in   string
		want string
	}{
		{"comfort", "comfort"},
		{"standby", "standby"},
		{"night", "night"},
		{"frost", "frost"},
	}
	for _, tt := range tests {
		if err := hm.SetValue(tt.in); err != nil {
			t.Fatalf("SetValue(%q): %v", tt.in, err)
		}
		if hm.Value() != tt.want {
			t.Errorf("SetValue(%q) -> %q, want %q", tt.in, hm.Value(), tt.want)
		}
	}
	// Numeric text is rejected even for codes that name a valid mode.
	for _, bad := range []string{"1", "4", "0", "comfy"} {
		if err := hm.SetValue(bad); err == nil {
			t.Errorf("SetValue(%q) should fail", bad)
		}
	}
}

func TestHeatingModeSetIntValue(t *testing.T) {
	hm := NewHeatingMode("hm", "", InitDefault)
	l := &recordingListener{}
	hm.AddChangeListener(l)

	hm.SetIntValue(2)
	if hm.Value() != "standby" || !l.called {
		t.Errorf("got %q changed=%v, want standby", hm.Value(), l.called)
	}

	l.called = false
	hm.SetIntValue(9)
	if hm.Value() != "standby" || l.called {
		t.Errorf("out-of-range code must be ignored, got %q changed=%v", hm.Value(), l.called)
	}
}

func TestHeatingModeOnWrite(t *testing.T) {
	hm := NewHeatingMode("hm", "", InitDefault)
	l := &recordingListener{}
	hm.AddChangeListener(l)

	if err := hm.OnWrite([]byte{0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	if hm.Value() != "comfort" || !l.called {
		t.Errorf("got %q changed=%v, want comfort", hm.Value(), l.called)
	}

	l.called = false
	if err := hm.OnWrite([]byte{0, 0, 4}); err != nil {
		t.Fatal(err)
	}
	if hm.Value() != "frost" || !l.called {
		t.Errorf("got %q changed=%v, want frost", hm.Value(), l.called)
	}

	l.called = false
	if err := hm.OnWrite([]byte{0, 0, 5}); err != nil {
		t.Fatal(err)
	}
	if hm.Value() != "frost" || l.called {
		t.Errorf("out-of-range byte must be ignored, got %q changed=%v", hm.Value(), l.called)
	}

	if err := hm.OnWrite([]byte{0, 0}); err == nil {
		t.Error("short buffer should be rejected")
	}
}

func TestHeatingModeExportImport(t *testing.T) {
	orig := NewHeatingMode("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)
	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*HeatingMode); !ok {
		t.Errorf("expected *HeatingMode, got %T", res)
	}
}
