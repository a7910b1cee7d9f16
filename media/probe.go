package media

import (
	"context"
	"encoding/json"
	"strconv"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

// Toolchain runs the external media tools for one configured target format.
type Toolchain struct {
	cfg Config
	log *logger.Logger
	run Runner
}

// NewToolchain creates a toolchain with the given configuration.
func NewToolchain(cfg Config, log *logger.Logger) *Toolchain {
	cfg.ApplyDefaults()
	return &Toolchain{
		cfg: cfg,
		log: log.WithComponent("media"),
		run: Run,
	}
}

// Probe inspects an audio file and returns its metadata.
func (tc *Toolchain) Probe(ctx context.Context, path string) (*Info, error) {
	res, err := tc.run(ctx, Command{
		Binary: tc.cfg.FFprobe,
		Args: []string{
			"-v", "quiet",
			"-print_format", "json",
			"-show_format",
			"-show_streams",
			path,
		},
		Timeout: tc.cfg.ProbeTimeout,
	})
	if err != nil {
		return nil, apperrors.ProbeFailed(err).WithDetail("path", path)
	}

	info, err := parseProbeOutput(res.Stdout)
	if err != nil {
		return nil, err
	}

	tc.log.Debug("probed audio", logger.Fields(
		logger.FieldSeconds, info.Duration,
		logger.FieldSizeBytes, info.SizeBytes,
		"codec", info.Codec,
		"sample_rate", info.SampleRate,
		"channels", info.Channels,
	))
	return info, nil
}

// --- ffprobe JSON output ---

type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// parseProbeOutput extracts audio metadata from ffprobe's JSON output.
func parseProbeOutput(out []byte) (*Info, error) {
	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return nil, apperrors.ProbeFailed(err)
	}

	var audio *probeStream
	for i := range probed.Streams {
		if probed.Streams[i].CodecType == "audio" {
			audio = &probed.Streams[i]
			break
		}
	}
	if audio == nil {
		return nil, apperrors.InvalidAudio("no audio stream found")
	}

	duration, _ := strconv.ParseFloat(probed.Format.Duration, 64)
	size, _ := strconv.ParseInt(probed.Format.Size, 10, 64)
	sampleRate, _ := strconv.Atoi(audio.SampleRate)

	return &Info{
		Duration:   duration,
		SizeBytes:  size,
		Codec:      audio.CodecName,
		SampleRate: sampleRate,
		Channels:   audio.Channels,
	}, nil
}
