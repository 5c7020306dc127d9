package objects

import "testing"

func TestStringValueSetValue(t *testing.T) {
	sv := NewStringValue("sv", "", InitDefault)
	if err := sv.SetValue("hello world"); err != nil {
		t.Fatal(err)
	}
	if sv.Value() != "hello world" {
		t.Errorf("got %q, want %q", sv.Value(), "hello world")
	}
	if err := sv.SetValue("12345678901234"); err != nil {
		t.Fatalf("14-char value should be accepted: %v", err)
	}
	if err := sv.SetValue("123456789012345"); err == nil {
		t.Error("15-char value should be rejected")
	}
	if err := sv.SetValue("caf\xe9"); err == nil {
		t.Error("non-ASCII value should be rejected")
	}
}

func TestStringValueOnWrite(t *testing.T) {
	sv := NewStringValue("sv", "", InitDefault)
	l := &recordingListener{}
	sv.AddChangeListener(l)

	buf := make([]byte, 16)
	copy(buf[2:], "hello")
	if err := sv.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	if sv.Value() != "hello" || !l.called {
		t.Errorf("got %q changed=%v, want hello", sv.Value(), l.called)
	}

	l.called = false
	if err := sv.OnWrite(buf); err != nil {
		t.Fatal(err)
	}
	if l.called {
		t.Error("identical onWrite must not renotify")
	}

	if err := sv.OnWrite(buf[:10]); err == nil {
		t.Error("short buffer should be rejected")
	}
}

func TestStringValueExportImport(t *testing.T) {
	orig := NewStringValue("test", "", InitDefault)
	e := newObjectElement()
	orig.ExportXML(e)
	res, err := Create(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.(*StringValue); !ok {
		t.Errorf("expected *StringValue, got %T", res)
	}
}
