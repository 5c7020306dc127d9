package objects

import "testing"

func TestTimeOfDaySetValue(t *testing.T) {
	tm := NewTimeOfDay("t", "", InitDefault)
	if err := tm.SetValue("00:00:00"); err != nil {
		t.Fatal(err)
	}
	if tm.Value() != "0:0:0" {
		t.Errorf("got %q, want 0:0:0", tm.Value())
	}
	if err := tm.SetValue("17:30:05"); err != nil {
		t.Fatal(err)
	}
	if tm.Value() != "17:30:5" {
		t.Errorf("got %q, want 17:30:5", tm.Value())
	}
	wday, hour, min, sec := tm.GetTime()
	if wday != 0 || hour != 17 || min != 30 || sec != 5 {
		t.Errorf("GetTime() = %d %d %d %d, want 0 17 30 5", wday, hour, min, sec)
	}

	for _, bad := range []string{"24:30:00", "23:-1:10", "23:-1", "23:60:0", "0:50:111", "now:10:50", "0:50:11:1"} {
		if err := tm.SetValue(bad); err == nil {
			t.Errorf("SetValue(%q) should fail", bad)
		}
	}

	tm.SetTime(1, 20, 45, 0)
	if tm.Value() != "20:45:0" {
		t.Errorf("got %q, want 20:45:0", tm.Value())
	}
	wday, hour, min, sec = tm.GetTime()
	if wday != 1 || hour != 20 || min != 45 || sec != 0 {
		t.Errorf("GetTime() after SetTime = %d %d %d %d", wday, hour, min, sec)
	}
}

func TestTimeOfDayOnWrite(t *testing.T) {
	tm := NewTimeOfDay("t", "", InitDefault)
	_ = tm.SetValue("22:01:00")
	l := &recordingListener{}
	tm.AddChangeListener(l)

	buf := []byte{0, 0x80, 0, 0, 0}
	l.called = false
	if err := tm.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	if tm.Value() != "0:0:0" || !l.called {
		t.Errorf("got %q changed=%v", tm.Value(), l.called)
	}

	buf[2], buf[3], buf[4] = 23, 10, 4
	l.called = false
	if err := tm.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	if tm.Value() != "23:10:4" || !l.called {
		t.Errorf("got %q changed=%v", tm.Value(), l.called)
	}

	l.called = false
	if err := tm.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	if l.called {
		t.Error("identical onWrite must not renotify")
	}

	buf[2] = 20 | (3 << 5)
	buf[3], buf[4] = 10, 4
	l.called = false
	if err := tm.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	wday, hour, min, sec := tm.GetTime()
	if wday != 3 || hour != 20 || min != 10 || sec != 4 || !l.called {
		t.Errorf("got %d %d %d %d changed=%v", wday, hour, min, sec, l.called)
	}
}

func TestTimeOfDayExportImport(t *testing.T) {
	orig := NewTimeOfDay("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)
	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*TimeOfDay); !ok {
		t.Errorf("expected *TimeOfDay, got %T", res)
	}
}
