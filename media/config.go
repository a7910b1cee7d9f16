package media

import (
	"fmt"
	"time"
)

// Config contains media toolchain configuration.
type Config struct {
	// FFmpeg is the ffmpeg binary path or name.
	FFmpeg string `yaml:"ffmpeg" mapstructure:"ffmpeg"`
	// FFprobe is the ffprobe binary path or name.
	FFprobe string `yaml:"ffprobe" mapstructure:"ffprobe"`
	// SampleRate is the compression target sample rate in Hz.
	SampleRate int `yaml:"sample_rate" mapstructure:"sample_rate"`
	// Channels is the compression target channel count.
	Channels int `yaml:"channels" mapstructure:"channels"`
	// Codec is the compression target codec.
	Codec string `yaml:"codec" mapstructure:"codec"`
	// ProbeTimeout bounds a single ffprobe invocation.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
	// EncodeTimeout bounds a single ffmpeg compression invocation.
	EncodeTimeout time.Duration `yaml:"encode_timeout" mapstructure:"encode_timeout"`
	// CutTimeout bounds a single ffmpeg chunk-cut invocation.
	CutTimeout time.Duration `yaml:"cut_timeout" mapstructure:"cut_timeout"`
}

// ApplyDefaults applies default values to toolchain configuration.
// The defaults match the recognition service's preferred input: 16 kHz
// mono FLAC, a lossless codec so repeated re-encodes cannot degrade speech.
func (c *Config) ApplyDefaults() {
	if c.FFmpeg == "" {
		c.FFmpeg = "ffmpeg"
	}
	if c.FFprobe == "" {
		c.FFprobe = "ffprobe"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 16000
	}
	if c.Channels == 0 {
		c.Channels = 1
	}
	if c.Codec == "" {
		c.Codec = "flac"
	}
	if c.ProbeTimeout == 0 {
		c.ProbeTimeout = 30 * time.Second
	}
	if c.EncodeTimeout == 0 {
		c.EncodeTimeout = 5 * time.Minute
	}
	if c.CutTimeout == 0 {
		c.CutTimeout = 2 * time.Minute
	}
}

// Validate validates toolchain configuration.
func (c *Config) Validate() error {
	if c.SampleRate < 8000 {
		return fmt.Errorf("media.sample_rate must be at least 8000 (got: %d)", c.SampleRate)
	}
	if c.Channels < 1 {
		return fmt.Errorf("media.channels must be at least 1 (got: %d)", c.Channels)
	}
	if c.Codec == "" {
		return fmt.Errorf("media.codec is required")
	}
	return nil
}
