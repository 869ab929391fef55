package config

import "testing"

func validConfig() *Config {
	c := &Config{}
	c.Environment = "production"
	c.Backend.Type = "kafka"
	c.Kafka.Topic = "stockpulse.recommendations"
	c.Kafka.SnapshotsTopic = "stockpulse.snapshots"
	c.MarketFeed.Symbols = []string{"AAPL"}
	c.Providers.MarketDataURL = "http://market:8080"
	c.Providers.SentimentURL = "http://sentiment:8080"
	return c
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsSharedKafkaTopic(t *testing.T) {
	c := validConfig()
	c.Kafka.SnapshotsTopic = c.Kafka.Topic
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when snapshots topic equals publish topic")
	}
}

func TestValidateRequiresSnapshotsTopic(t *testing.T) {
	c := validConfig()
	c.Kafka.SnapshotsTopic = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for missing snapshots topic")
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	c := validConfig()
	c.Backend.Type = "postgres"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}
