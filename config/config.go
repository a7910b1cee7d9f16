package config

import (
	"fmt"

	"github.com/kbukum/audiopipe/cache"
	"github.com/kbukum/audiopipe/ingest"
	"github.com/kbukum/audiopipe/logger"
	"github.com/kbukum/audiopipe/media"
	"github.com/kbukum/audiopipe/quota"
	"github.com/kbukum/audiopipe/transcription/azure"
	"github.com/kbukum/audiopipe/transcription/whisper"
)

// Config is the root configuration for the ingestion service.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging   logger.Config  `yaml:"logging" mapstructure:"logging"`
	Media     media.Config   `yaml:"media" mapstructure:"media"`
	RateLimit quota.Config   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Cache     cache.Config   `yaml:"cache" mapstructure:"cache"`
	Ingest    ingest.Config  `yaml:"ingest" mapstructure:"ingest"`
	Provider  ProviderConfig `yaml:"provider" mapstructure:"provider"`
}

// ProviderConfig selects and configures the transcription backends.
type ProviderConfig struct {
	// Default names the provider used for transcription.
	Default string         `yaml:"default" mapstructure:"default"`
	Whisper whisper.Config `yaml:"whisper" mapstructure:"whisper"`
	Azure   azure.Config   `yaml:"azure" mapstructure:"azure"`
}

// ApplyDefaults applies default values to the whole configuration tree.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "audiopipe"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}

	c.Logging.ApplyDefaults()
	c.Media.ApplyDefaults()
	c.Cache.ApplyDefaults()
	c.Ingest.ApplyDefaults()

	if c.RateLimit.Name == "" {
		c.RateLimit.Name = "transcription"
	}
	if c.RateLimit.Limit == 0 && c.RateLimit.Period == 0 {
		def := quota.DefaultConfig(c.RateLimit.Name)
		c.RateLimit.Limit = def.Limit
		c.RateLimit.Period = def.Period
	}

	if c.Provider.Default == "" {
		c.Provider.Default = azure.ProviderName
	}
}

// Validate validates the whole configuration tree.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Media.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Ingest.Validate(); err != nil {
		return err
	}

	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate_limit.limit must be positive (got: %d)", c.RateLimit.Limit)
	}
	if c.RateLimit.Period <= 0 {
		return fmt.Errorf("rate_limit.period must be positive (got: %v)", c.RateLimit.Period)
	}

	switch c.Provider.Default {
	case whisper.ProviderName, azure.ProviderName:
	default:
		return fmt.Errorf("provider.default must be one of [%s, %s] (got: %s)",
			whisper.ProviderName, azure.ProviderName, c.Provider.Default)
	}

	return nil
}
