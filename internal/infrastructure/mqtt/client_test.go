package mqtt

import (
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/config"
)

// testConfig returns a valid MQTT configuration for testing.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "grayedge-test",
			TLS:      false,
		},
		QoS:       1,
		KeepAlive: 15,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v, want nil", err)
	}
}

func TestIsConnected_InitialState(t *testing.T) {
	client := &Client{}
	if client.IsConnected() {
		t.Error("IsConnected() = true on zero client, want false")
	}
}

func TestStatusTopic(t *testing.T) {
	tests := []struct {
		clientID string
		want     string
	}{
		{"grayedge-01", "/grayedge-01/status"},
		{"boiler-room", "/boiler-room/status"},
	}

	for _, tt := range tests {
		if got := StatusTopic(tt.clientID); got != tt.want {
			t.Errorf("StatusTopic(%q) = %q, want %q", tt.clientID, got, tt.want)
		}
	}
}

func TestPublishValidation(t *testing.T) {
	client := &Client{cfg: testConfig()}

	if err := client.Publish("", []byte("1"), 1, false); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := client.Publish("/grayedge-test/digital_output/x/set", []byte("1"), 3, false); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("qos 3 error = %v, want ErrInvalidQoS", err)
	}

	big := []byte(strings.Repeat("x", maxPayloadSize+1))
	if err := client.Publish("/grayedge-test/t", big, 1, false); !errors.Is(err, ErrPublishFailed) {
		t.Errorf("oversize payload error = %v, want ErrPublishFailed", err)
	}

	if err := client.Publish("/grayedge-test/t", []byte("1"), 1, false); !errors.Is(err, ErrNotConnected) {
		t.Errorf("disconnected publish error = %v, want ErrNotConnected", err)
	}
}

func TestSubscribeValidation(t *testing.T) {
	client := &Client{
		cfg:           testConfig(),
		subscriptions: make(map[string]subscription),
	}
	handler := func(string, []byte) error { return nil }

	if err := client.Subscribe("", 1, handler); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := client.Subscribe("/grayedge-test/#", 3, handler); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("qos 3 error = %v, want ErrInvalidQoS", err)
	}
	if err := client.Subscribe("/grayedge-test/#", 1, nil); !errors.Is(err, ErrSubscribeFailed) {
		t.Errorf("nil handler error = %v, want ErrSubscribeFailed", err)
	}
	if err := client.Subscribe("/grayedge-test/#", 1, handler); !errors.Is(err, ErrNotConnected) {
		t.Errorf("disconnected subscribe error = %v, want ErrNotConnected", err)
	}
}

func TestSubscriptionCount_Empty(t *testing.T) {
	client := &Client{subscriptions: make(map[string]subscription)}
	if n := client.SubscriptionCount(); n != 0 {
		t.Errorf("SubscriptionCount() = %d, want 0", n)
	}
	if client.HasSubscription("/grayedge-test/#") {
		t.Error("HasSubscription() = true, want false")
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := testConfig()
	opts := buildClientOptions(cfg)

	if got := opts.ClientID; got != "grayedge-test" {
		t.Errorf("ClientID = %q, want grayedge-test", got)
	}
	if len(opts.Servers) != 1 {
		t.Fatalf("expected 1 broker, got %d", len(opts.Servers))
	}
	if got := opts.Servers[0].String(); got != "tcp://127.0.0.1:1883" {
		t.Errorf("broker URL = %q, want tcp://127.0.0.1:1883", got)
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := testConfig()
	cfg.Broker.TLS = true
	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].Scheme; got != "ssl" {
		t.Errorf("scheme = %q, want ssl", got)
	}
	if opts.TLSConfig == nil {
		t.Error("TLSConfig not set with TLS enabled")
	}
}

func TestConfigureLWT(t *testing.T) {
	cfg := testConfig()
	opts := buildClientOptions(cfg)
	configureLWT(opts, cfg)

	if got := opts.WillTopic; got != "/grayedge-test/status" {
		t.Errorf("will topic = %q, want /grayedge-test/status", got)
	}
	if got := string(opts.WillPayload); got != "offline" {
		t.Errorf("will payload = %q, want offline", got)
	}
	if !opts.WillRetained {
		t.Error("will not retained")
	}
}
