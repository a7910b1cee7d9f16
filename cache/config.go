package cache

import (
	"fmt"
	"time"
)

// Config contains transcript cache configuration.
type Config struct {
	// Enabled toggles the cache. A disabled cache means every upload is
	// transcribed from scratch.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Addr is the Redis host:port.
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	PoolSize int    `yaml:"pool_size" mapstructure:"pool_size"`
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	// TranscriptTTL is how long completed transcripts are kept.
	TranscriptTTL time.Duration `yaml:"transcript_ttl" mapstructure:"transcript_ttl"`
	// StatusTTL is how long processing-status keys are kept.
	StatusTTL time.Duration `yaml:"status_ttl" mapstructure:"status_ttl"`
}

// ApplyDefaults applies default values to cache configuration.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.PoolSize == 0 {
		c.PoolSize = 10
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 5 * time.Second
	}
	if c.TranscriptTTL == 0 {
		c.TranscriptTTL = 24 * time.Hour
	}
	if c.StatusTTL == 0 {
		c.StatusTTL = time.Hour
	}
}

// Validate validates cache configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Addr == "" {
		return fmt.Errorf("cache.addr is required when the cache is enabled")
	}
	if c.DB < 0 {
		return fmt.Errorf("cache.db must not be negative (got: %d)", c.DB)
	}
	if c.TranscriptTTL < c.StatusTTL {
		return fmt.Errorf("cache.transcript_ttl must not be shorter than cache.status_ttl")
	}
	return nil
}
