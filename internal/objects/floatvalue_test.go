package objects

import "testing"

func TestFloatValueSetValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"27.2", "27.2"},
		{"-320", "-320"},
		{"0.02", "0.02"},
		{"-35.24", "-35.24"},
		{"670760.96", "670760.96"},
		{"-671088.64", "-671088.64"},
	}
	fv := NewFloatValue("fv", "", InitDefault)
	for _, tt := range tests {
		if err := fv.SetValue(tt.in); err != nil {
			t.Fatalf("SetValue(%q): %v", tt.in, err)
		}
		if fv.Value() != tt.want {
			t.Errorf("SetValue(%q) -> %q, want %q", tt.in, fv.Value(), tt.want)
		}
	}
	for _, bad := range []string{"abc", "670760.97", "-671088.65"} {
		if err := fv.SetValue(bad); err == nil {
			t.Errorf("SetValue(%q) should fail", bad)
		}
	}
}

func TestFloatValueOnWrite(t *testing.T) {
	fv := NewFloatValue("fv", "", InitDefault)
	l := &recordingListener{}
	fv.AddChangeListener(l)

	cases := []struct {
		buf  []byte
		want string
	}{
		{[]byte{0, 0, 0x0D, 0x50}, "27.2"},
		{[]byte{0, 0, 0xA0, 0x30}, "-320"},
		{[]byte{0, 0, 0x00, 0x02}, "0.02"},
	}
	for _, c := range cases {
		l.called = false
		if err := fv.OnWrite(c.buf); err != nil {
			t.Fatalf("OnWrite(% x): %v", c.buf, err)
		}
		if fv.Value() != c.want || !l.called {
			t.Errorf("OnWrite(% x) -> %q changed=%v, want %q", c.buf, fv.Value(), l.called, c.want)
		}
	}

	if err := fv.OnWrite([]byte{0, 0, 0x7F, 0xFF}); err == nil {
		t.Error("0x7FFF sentinel should be rejected")
	}
	if err := fv.OnWrite([]byte{0, 0, 0}); err == nil {
		t.Error("short buffer should be rejected")
	}
}

func TestFloatValueExportImport(t *testing.T) {
	orig := NewFloatValue("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)
	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*FloatValue); !ok {
		t.Errorf("expected *FloatValue, got %T", res)
	}
}
