package objects

import "testing"

func TestScalingSetValue(t *testing.T) {
	sc := NewScaling("sc", "", InitDefault)
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"128", "128"},
		{"255", "255"},
	}
	for _, tt := range tests {
		if err := sc.SetValue(tt.in); err != nil {
			t.Fatalf("SetValue(%q): %v", tt.in, err)
		}
		if sc.Value() != tt.want {
			t.Errorf("SetValue(%q) -> %q, want %q", tt.in, sc.Value(), tt.want)
		}
	}
	for _, bad := range []string{"-1", "256", "abc", "1.5"} {
		if err := sc.SetValue(bad); err == nil {
			t.Errorf("SetValue(%q) should fail", bad)
		}
	}
}

func TestScalingOnWrite(t *testing.T) {
	sc := NewScaling("sc", "", InitDefault)
	l := &recordingListener{}
	sc.AddChangeListener(l)

	if err := sc.OnWrite([]byte{0, 0, 42}); err != nil {
		t.Fatal(err)
	}
	if sc.Value() != "42" || !l.called {
		t.Errorf("got %q changed=%v, want 42", sc.Value(), l.called)
	}

	l.called = false
	if err := sc.OnWrite([]byte{0, 0, 42}); err != nil {
		t.Fatal(err)
	}
	if l.called {
		t.Error("identical onWrite must not renotify")
	}

	if err := sc.OnWrite([]byte{0, 0}); err == nil {
		t.Error("short buffer should be rejected")
	}
}

func TestScalingExportImport(t *testing.T) {
	orig := NewScaling("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)
	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*Scaling); !ok {
		t.Errorf("expected *Scaling, got %T", res)
	}
}
