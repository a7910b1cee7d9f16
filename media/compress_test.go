package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

func TestCompressReportsActualSize(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "compressed.flac")

	tc := NewToolchain(Config{}, logger.Nop())
	tc.run = func(_ context.Context, cmd Command) (*Result, error) {
		// The real tool writes the output file; the fake does the same so
		// the size check runs against a real stat.
		if err := os.WriteFile(out, make([]byte, 1234), 0o644); err != nil {
			t.Fatal(err)
		}
		return &Result{}, nil
	}

	size, err := tc.Compress(context.Background(), filepath.Join(dir, "original.wav"), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 1234 {
		t.Errorf("expected size 1234, got %d", size)
	}
}

func TestCompressTargetArguments(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "compressed.flac")

	var got Command
	tc := NewToolchain(Config{SampleRate: 16000, Channels: 1, Codec: "flac"}, logger.Nop())
	tc.run = func(_ context.Context, cmd Command) (*Result, error) {
		got = cmd
		return &Result{}, os.WriteFile(out, []byte("x"), 0o644)
	}

	if _, err := tc.Compress(context.Background(), "/tmp/in.wav", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"-ar", "16000", "-ac", "1", "-c:a", "flac"}
	joined := fmt.Sprint(got.Args)
	for i := 0; i < len(want); i += 2 {
		pair := fmt.Sprintf("%s %s", want[i], want[i+1])
		if !contains2(got.Args, want[i], want[i+1]) {
			t.Errorf("expected args to contain %q, got %s", pair, joined)
		}
	}
}

// contains2 reports whether args contains the flag immediately followed by
// the value.
func contains2(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestCompressToolFailure(t *testing.T) {
	tc := NewToolchain(Config{}, logger.Nop())
	tc.run = func(_ context.Context, _ Command) (*Result, error) {
		return nil, fmt.Errorf("ffmpeg: exit 1")
	}

	_, err := tc.Compress(context.Background(), "/tmp/in.wav", "/tmp/out.flac")
	if !apperrors.IsKind(err, apperrors.KindCompressionFailed) {
		t.Errorf("expected COMPRESSION_FAILED, got %v", err)
	}
}
