package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Schedule struct {
		UpdateInterval time.Duration `yaml:"update_interval"`
		MaxWorkers     int           `yaml:"max_workers"`
	} `yaml:"schedule"`

	Sources []Source `yaml:"sources"`

	Embedding EmbeddingConfig `yaml:"embedding"`

	Verdict VerdictConfig `yaml:"verdict"`

	Trust TrustConfig `yaml:"trust"`

	Extraction ExtractionConfig `yaml:"extraction"`
}

// Source describes a single trusted feed
type Source struct {
	Name        string        `yaml:"name"`
	URL         string        `yaml:"url"`
	Interval    time.Duration `yaml:"interval"`     // per-source fetch interval, 0 means fetch on every scheduler pass
	MaxArticles int           `yaml:"max_articles"` // per-fetch entry cap
	Extract     bool          `yaml:"extract"`      // fetch full article text instead of relying on the feed summary
}

// EmbeddingConfig holds settings for the embedding model
type EmbeddingConfig struct {
	Endpoint  string        `yaml:"endpoint"` // OpenAI-compatible API endpoint
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	Timeout   time.Duration `yaml:"timeout"`
}

// VerdictConfig holds verdict aggregation policy. Thresholds map confidence
// to labels, TopK is the match pool size, TopN the aggregation window.
type VerdictConfig struct {
	TopK              int     `yaml:"top_k"`
	TopN              int     `yaml:"top_n"`
	Verified          float64 `yaml:"verified"`
	PartiallyVerified float64 `yaml:"partially_verified"`
	Disputed          float64 `yaml:"disputed"`
	RelevanceFloor    float64 `yaml:"relevance_floor"`
}

// TrustConfig holds the vote feedback policy
type TrustConfig struct {
	VoteStep float64 `yaml:"vote_step"`
	MinBound float64 `yaml:"min_bound"`
	MaxBound float64 `yaml:"max_bound"`
}

// ExtractionConfig holds full-text extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MinTextLength int           `yaml:"min_text_length"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero values with sane defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsproof.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 5
	}

	for i := range c.Sources {
		if c.Sources[i].MaxArticles == 0 {
			c.Sources[i].MaxArticles = 50
		}
	}

	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-small"
	}
	if c.Embedding.Dimension == 0 {
		c.Embedding.Dimension = 384
	}
	if c.Embedding.Timeout == 0 {
		c.Embedding.Timeout = 30 * time.Second
	}

	if c.Verdict.TopK == 0 {
		c.Verdict.TopK = 10
	}
	if c.Verdict.TopN == 0 {
		c.Verdict.TopN = 3
	}
	if c.Verdict.Verified == 0 {
		c.Verdict.Verified = 0.85
	}
	if c.Verdict.PartiallyVerified == 0 {
		c.Verdict.PartiallyVerified = 0.6
	}
	if c.Verdict.Disputed == 0 {
		c.Verdict.Disputed = 0.35
	}
	if c.Verdict.RelevanceFloor == 0 {
		c.Verdict.RelevanceFloor = 0.2
	}

	if c.Trust.VoteStep == 0 {
		c.Trust.VoteStep = 0.05
	}
	if c.Trust.MinBound == 0 {
		c.Trust.MinBound = 0.5
	}
	if c.Trust.MaxBound == 0 {
		c.Trust.MaxBound = 1.5
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Newsproof/1.0"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d].name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source %q: url is required", src.Name)
		}
		if src.MaxArticles < 1 {
			return fmt.Errorf("source %q: max_articles must be positive", src.Name)
		}
	}

	if cfg.Verdict.TopN > cfg.Verdict.TopK {
		return fmt.Errorf("verdict.top_n (%d) must not exceed verdict.top_k (%d)", cfg.Verdict.TopN, cfg.Verdict.TopK)
	}
	if cfg.Verdict.Verified < cfg.Verdict.PartiallyVerified || cfg.Verdict.PartiallyVerified < cfg.Verdict.Disputed {
		return fmt.Errorf("verdict thresholds must be ordered: verified >= partially_verified >= disputed")
	}
	for name, v := range map[string]float64{
		"verified": cfg.Verdict.Verified, "partially_verified": cfg.Verdict.PartiallyVerified,
		"disputed": cfg.Verdict.Disputed, "relevance_floor": cfg.Verdict.RelevanceFloor,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("verdict.%s must be between 0 and 1", name)
		}
	}

	if cfg.Trust.VoteStep < 0 || cfg.Trust.VoteStep > 1 {
		return fmt.Errorf("trust.vote_step must be between 0 and 1")
	}
	if cfg.Trust.MinBound > 1 || cfg.Trust.MaxBound < 1 {
		return fmt.Errorf("trust bounds must bracket the default weight 1.0")
	}
	if cfg.Trust.MinBound >= cfg.Trust.MaxBound {
		return fmt.Errorf("trust.min_bound must be below trust.max_bound")
	}

	if cfg.Embedding.Dimension < 1 {
		return fmt.Errorf("embedding.dimension must be positive")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
