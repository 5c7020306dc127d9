package mqttsink

import (
	"fmt"

	"github.com/stefdude/linknx/internal/objects"
)

// Publisher is the subset of mqtt.Client's surface the sink needs,
// letting tests substitute a fake without standing up a broker.
type Publisher interface {
	PublishString(topic string, payload string, qos byte, retained bool) error
}

// Logger is satisfied by both internal/logging.Logger and slog.Logger.
type Logger interface {
	Warn(msg string, args ...any)
}

// Config controls the topic layout and delivery guarantees of published
// status messages.
type Config struct {
	// TopicPrefix is prepended to every object id, e.g. "linknx/object"
	// publishes id "living-room" to "linknx/object/living-room".
	TopicPrefix string

	// QoS is the MQTT quality-of-service level used for every publish.
	QoS byte

	// Retained marks published messages retained, so a subscriber
	// connecting later immediately receives the last known value.
	Retained bool
}

// Sink is an objects.ChangeListener that republishes every change to MQTT.
type Sink struct {
	publisher Publisher
	cfg       Config
	logger    Logger
}

// New creates a Sink publishing through pub according to cfg.
func New(pub Publisher, cfg Config, logger Logger) *Sink {
	return &Sink{publisher: pub, cfg: cfg, logger: logger}
}

// Topic returns the MQTT topic an object's value is published under.
func (s *Sink) Topic(id string) string {
	return fmt.Sprintf("%s/%s", s.cfg.TopicPrefix, id)
}

// OnChange publishes obj's current value to its topic.
func (s *Sink) OnChange(obj objects.Object) {
	if obj == nil {
		return
	}
	s.publish(obj)
}

func (s *Sink) publish(obj objects.Object) {
	if err := s.publisher.PublishString(s.Topic(obj.ID()), obj.Value(), s.cfg.QoS, s.cfg.Retained); err != nil {
		if s.logger != nil {
			s.logger.Warn("mqttsink: publish failed", "id", obj.ID(), "err", err)
		}
	}
}

// Attach registers s as a change listener on every object in ctl and
// publishes each object's current value once, so subscribers see full
// state immediately rather than waiting for the next change.
func Attach(ctl *objects.Controller, s *Sink) {
	for _, obj := range ctl.All() {
		obj.AddChangeListener(s)
		s.publish(obj)
	}
}
