package source

import (
	"context"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/logger"
	"github.com/rileyhilliard/invdash/internal/status"
)

// MQTTConfig describes the broker the device's bridge publishes to.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topics   []string
	Timeout  time.Duration
}

// ParseTopic splits a topic such as "powmr/inverter.temp" into its section
// and field. The last topic level carries "section.field"; at least one
// level must precede it.
func ParseTopic(topic string) (section, field string, ok bool) {
	parts := strings.Split(strings.Trim(topic, "/"), "/")
	if len(parts) < 2 {
		return "", "", false
	}
	section, field, ok = strings.Cut(parts[len(parts)-1], ".")
	if !ok || section == "" || field == "" {
		return "", "", false
	}
	return section, field, true
}

// Store keeps the latest value of every field seen on the broker, in the
// order fields first arrived.
type Store struct {
	mu      sync.Mutex
	snap    status.Snapshot
	updated time.Time
}

// Put records a payload published on topic. It reports false for topics
// that don't carry a section.field.
func (s *Store) Put(topic string, payload []byte) bool {
	section, field, ok := ParseTopic(topic)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.snap.SetField(section, field, status.ParseScalar(string(payload)))
	s.updated = time.Now()
	s.mu.Unlock()
	return true
}

// Snapshot returns a copy of the current values, or false before the first
// message.
func (s *Store) Snapshot() (*status.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.snap.Entries) == 0 {
		return nil, false
	}
	return s.snap.Clone(), true
}

// Updated returns when the last message was stored.
func (s *Store) Updated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

// MQTTSource serves the values published by the device's MQTT bridge as
// status snapshots.
type MQTTSource struct {
	cfg    MQTTConfig
	log    logger.Logger
	store  Store
	client mqtt.Client
}

// NewMQTT creates an MQTTSource. Call Connect before polling it.
func NewMQTT(cfg MQTTConfig, log logger.Logger) *MQTTSource {
	if log == nil {
		log = logger.Noop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &MQTTSource{cfg: cfg, log: log}
}

// Connect dials the broker. Subscriptions are (re)established on every
// connect so they survive automatic reconnects.
func (s *MQTTSource) Connect() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	opts.SetClientID(s.cfg.ClientID)
	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
		opts.SetPassword(s.cfg.Password)
	}
	opts.SetKeepAlive(60 * time.Second)
	opts.SetConnectTimeout(s.cfg.Timeout)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Minute)
	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		s.log.Warn("mqtt connection lost: %v", err)
	})

	s.client = mqtt.NewClient(opts)
	s.log.Info("connecting to %s", s.cfg.Broker)

	token := s.client.Connect()
	if !token.WaitTimeout(s.cfg.Timeout) {
		return errors.New(errors.ErrMQTT,
			"Timed out connecting to "+s.cfg.Broker,
			"Check mqtt.broker in .invdash.yaml")
	}
	if err := token.Error(); err != nil {
		return errors.WrapWithCode(err, errors.ErrMQTT,
			"Can't connect to "+s.cfg.Broker,
			"Check mqtt.broker and credentials in .invdash.yaml")
	}
	return nil
}

func (s *MQTTSource) onConnect(client mqtt.Client) {
	for _, topic := range s.cfg.Topics {
		token := client.Subscribe(topic, 0, s.onMessage)
		if token.Wait() && token.Error() != nil {
			s.log.Error("subscribe %s failed: %v", topic, token.Error())
			continue
		}
		s.log.Info("subscribed to %s", topic)
	}
}

func (s *MQTTSource) onMessage(_ mqtt.Client, msg mqtt.Message) {
	s.handle(msg.Topic(), msg.Payload())
}

func (s *MQTTSource) handle(topic string, payload []byte) {
	if !s.store.Put(topic, payload) {
		s.log.Warn("ignoring topic %s: expected .../section.field", topic)
		return
	}
	s.log.Debug("%s = %s", topic, payload)
}

// Status returns the latest values. It fails until the first message has
// arrived.
func (s *MQTTSource) Status(ctx context.Context) (*status.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, errors.New(errors.ErrFetch,
			"No data received from "+s.cfg.Broker+" yet",
			"Check mqtt.topics matches what the bridge publishes")
	}
	return snap, nil
}

// Close disconnects from the broker.
func (s *MQTTSource) Close() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}
