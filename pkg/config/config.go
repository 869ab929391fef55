package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Backend struct {
		Type         string        `yaml:"type"`
		BatchSize    int           `yaml:"batch_size"`
		BatchTimeout time.Duration `yaml:"batch_timeout"`
	} `yaml:"backend"`
	Kafka struct {
		Brokers []string `yaml:"brokers"`
		// Topic carries published AnalysisResults; SnapshotsTopic feeds the
		// snapshot consumer. They must differ or the service would ingest
		// its own output.
		Topic          string `yaml:"topic"`
		SnapshotsTopic string `yaml:"snapshots_topic"`
		// LogsTopic enables aggregated log shipping when set.
		LogsTopic    string `yaml:"logs_topic"`
		RequiredAcks int    `yaml:"required_acks"`
		Compression  string `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
		Consumer struct {
			GroupID    string        `yaml:"group_id"`
			Workers    int           `yaml:"workers"`
			BufferSize int           `yaml:"buffer_size"`
			RetryMax   int           `yaml:"retry_max"`
			BackoffMin time.Duration `yaml:"backoff_min"`
			BackoffMax time.Duration `yaml:"backoff_max"`
			DLQTopic   string        `yaml:"dlq_topic"`
			MinBytes   int           `yaml:"min_bytes"`
			MaxBytes   int           `yaml:"max_bytes"`
		} `yaml:"consumer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	MarketFeed struct {
		APIKey         string        `yaml:"api_key"`
		WebSocketURL   string        `yaml:"websocket_url"`
		Symbols        []string      `yaml:"symbols"`
		ReconnectDelay time.Duration `yaml:"reconnect_delay"`
		PingInterval   time.Duration `yaml:"ping_interval"`
	} `yaml:"market_feed"`
	Providers struct {
		MarketDataURL string        `yaml:"market_data_url"`
		NewsURL       string        `yaml:"news_url"`
		SentimentURL  string        `yaml:"sentiment_url"`
		AnalystURL    string        `yaml:"analyst_url"`
		Timeout       time.Duration `yaml:"timeout"`
		CacheTTL      struct {
			Snapshot  time.Duration `yaml:"snapshot"`
			Sentiment time.Duration `yaml:"sentiment"`
			Analyst   time.Duration `yaml:"analyst"`
			Analysis  time.Duration `yaml:"analysis"`
		} `yaml:"cache_ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"providers"`
	Analysis struct {
		DefaultHeadlines int           `yaml:"default_headlines"`
		PortfolioWorkers int           `yaml:"portfolio_workers"`
		RefreshInterval  time.Duration `yaml:"refresh_interval"`
		RefreshLockTTL   time.Duration `yaml:"refresh_lock_ttl"`
	} `yaml:"analysis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("MARKET_FEED_API_KEY"); v != "" {
		c.MarketFeed.APIKey = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.MarketFeed.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("KAFKA_SNAPSHOTS_TOPIC"); v != "" {
		c.Kafka.SnapshotsTopic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Providers.Redis.Addr = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Backend.Type == "" {
		return fmt.Errorf("backend.type is required")
	}
	if c.Backend.Type != "kafka" && c.Backend.Type != "clickhouse" {
		return fmt.Errorf("backend.type must be 'kafka' or 'clickhouse', got '%s'", c.Backend.Type)
	}
	if c.Kafka.SnapshotsTopic == "" {
		return fmt.Errorf("kafka.snapshots_topic is required")
	}
	if c.Kafka.SnapshotsTopic == c.Kafka.Topic {
		return fmt.Errorf("kafka.snapshots_topic must differ from kafka.topic")
	}
	if len(c.MarketFeed.Symbols) == 0 {
		return fmt.Errorf("market_feed.symbols cannot be empty")
	}
	if c.Providers.MarketDataURL == "" {
		return fmt.Errorf("providers.market_data_url is required")
	}
	if c.Providers.SentimentURL == "" {
		return fmt.Errorf("providers.sentiment_url is required")
	}
	return nil
}
