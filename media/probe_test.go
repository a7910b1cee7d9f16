package media

import (
	"context"
	"fmt"
	"testing"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

const sampleProbeOutput = `{
	"streams": [
		{"codec_type": "video", "codec_name": "mjpeg"},
		{"codec_type": "audio", "codec_name": "pcm_s16le", "sample_rate": "44100", "channels": 2}
	],
	"format": {"duration": "725.480000", "size": "41943040"}
}`

func TestParseProbeOutput(t *testing.T) {
	info, err := parseProbeOutput([]byte(sampleProbeOutput))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Duration != 725.48 {
		t.Errorf("expected duration 725.48, got %v", info.Duration)
	}
	if info.SizeBytes != 41943040 {
		t.Errorf("expected size 41943040, got %d", info.SizeBytes)
	}
	if info.Codec != "pcm_s16le" {
		t.Errorf("expected codec pcm_s16le, got %q", info.Codec)
	}
	if info.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", info.SampleRate)
	}
	if info.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", info.Channels)
	}
}

func TestParseProbeOutputNoAudioStream(t *testing.T) {
	out := `{"streams": [{"codec_type": "video"}], "format": {"duration": "10", "size": "100"}}`
	_, err := parseProbeOutput([]byte(out))
	if !apperrors.IsKind(err, apperrors.KindInvalidAudio) {
		t.Errorf("expected INVALID_AUDIO, got %v", err)
	}
}

func TestParseProbeOutputMalformed(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json"))
	if !apperrors.IsKind(err, apperrors.KindProbeFailed) {
		t.Errorf("expected PROBE_FAILED, got %v", err)
	}
}

func TestProbeUsesFFprobe(t *testing.T) {
	var got Command
	tc := NewToolchain(Config{FFprobe: "/usr/bin/ffprobe"}, logger.Nop())
	tc.run = func(_ context.Context, cmd Command) (*Result, error) {
		got = cmd
		return &Result{Stdout: []byte(sampleProbeOutput)}, nil
	}

	info, err := tc.Probe(context.Background(), "/tmp/original.wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Duration != 725.48 {
		t.Errorf("expected parsed duration, got %v", info.Duration)
	}
	if got.Binary != "/usr/bin/ffprobe" {
		t.Errorf("expected configured ffprobe binary, got %q", got.Binary)
	}
	if got.Args[len(got.Args)-1] != "/tmp/original.wav" {
		t.Errorf("expected input path as final argument, got %v", got.Args)
	}
}

func TestProbeToolFailure(t *testing.T) {
	tc := NewToolchain(Config{}, logger.Nop())
	tc.run = func(_ context.Context, _ Command) (*Result, error) {
		return nil, fmt.Errorf("ffprobe: exit 1")
	}

	_, err := tc.Probe(context.Background(), "/tmp/broken.bin")
	if !apperrors.IsKind(err, apperrors.KindProbeFailed) {
		t.Errorf("expected PROBE_FAILED, got %v", err)
	}
}
