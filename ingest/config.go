package ingest

import (
	"fmt"
	"os"
)

// Config contains pipeline behavior configuration.
type Config struct {
	// Language is the expected speech language hint passed to the
	// recognition provider. Empty means auto-detect.
	Language string `yaml:"language" mapstructure:"language"`
	// AllowPartial accepts runs where some chunks failed, emitting the
	// segments of the chunks that succeeded. When false (the default) the
	// first chunk failure aborts the whole run.
	AllowPartial bool `yaml:"allow_partial" mapstructure:"allow_partial"`
	// SegmentSeconds is the target duration of emitted transcript
	// segments.
	SegmentSeconds float64 `yaml:"segment_seconds" mapstructure:"segment_seconds"`
	// WorkDir is where per-run scratch directories are created. Empty
	// means the system temp directory.
	WorkDir string `yaml:"work_dir" mapstructure:"work_dir"`
	// KeepArtifacts disables scratch cleanup after a run, for debugging.
	KeepArtifacts bool `yaml:"keep_artifacts" mapstructure:"keep_artifacts"`
}

// ApplyDefaults applies default values to pipeline configuration.
func (c *Config) ApplyDefaults() {
	if c.SegmentSeconds == 0 {
		c.SegmentSeconds = 15
	}
	if c.WorkDir == "" {
		c.WorkDir = os.TempDir()
	}
}

// Validate validates pipeline configuration.
func (c *Config) Validate() error {
	if c.SegmentSeconds <= 0 {
		return fmt.Errorf("ingest.segment_seconds must be positive (got: %v)", c.SegmentSeconds)
	}
	if c.WorkDir == "" {
		return fmt.Errorf("ingest.work_dir is required")
	}
	return nil
}
