package mqttsink

import (
	"errors"
	"testing"

	"github.com/stefdude/linknx/internal/objects"
)

var errPublishFailed = errors.New("publish failed")

type fakePublisher struct {
	published map[string]string
	qos       byte
	retained  bool
	failTopic string
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: make(map[string]string)}
}

func (f *fakePublisher) PublishString(topic, payload string, qos byte, retained bool) error {
	if topic == f.failTopic {
		return errPublishFailed
	}
	f.published[topic] = payload
	f.qos = qos
	f.retained = retained
	return nil
}

func TestAttachPublishesCurrentValues(t *testing.T) {
	pub := newFakePublisher()
	sink := New(pub, Config{TopicPrefix: "linknx/object", QoS: 1, Retained: true}, nil)

	ctl := objects.NewController()
	sw := objects.NewSwitching("living-room", "1/1/1", objects.InitDefault)
	ctl.Add(sw)

	Attach(ctl, sink)

	if got := pub.published["linknx/object/living-room"]; got != sw.Value() {
		t.Errorf("published %q, want %q", got, sw.Value())
	}
	if pub.qos != 1 || !pub.retained {
		t.Errorf("qos/retained = %d/%v, want 1/true", pub.qos, pub.retained)
	}
}

func TestAttachRepublishesOnChange(t *testing.T) {
	pub := newFakePublisher()
	sink := New(pub, Config{TopicPrefix: "linknx/object"}, nil)

	ctl := objects.NewController()
	sw := objects.NewSwitching("living-room", "1/1/1", objects.InitDefault)
	ctl.Add(sw)
	Attach(ctl, sink)

	if err := sw.SetValue("on"); err != nil {
		t.Fatal(err)
	}

	if got := pub.published["linknx/object/living-room"]; got != "on" {
		t.Errorf("published %q after change, want on", got)
	}
}

func TestOnChangeIgnoresNil(t *testing.T) {
	sink := New(newFakePublisher(), Config{TopicPrefix: "linknx/object"}, nil)
	sink.OnChange(nil) // must not panic
}
