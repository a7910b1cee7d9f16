package media

import (
	"context"
	"fmt"
	"math"
	"testing"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
)

func TestChunkLayoutProperties(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		chunkSeconds float64
		wantCount    int
	}{
		{"even division", 720, 240, 3},
		{"clamped scenario evens out", 720, 300, 3},
		{"remainder adds a chunk", 700, 300, 3},
		{"single chunk", 120, 300, 1},
		{"exact fit", 600, 300, 2},
		{"fractional durations", 612.48, 287.1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spans, err := chunkLayout(tc.total, tc.chunkSeconds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(spans) != tc.wantCount {
				t.Fatalf("expected %d chunks, got %d", tc.wantCount, len(spans))
			}

			var sum float64
			for i, s := range spans {
				if s.duration <= 0 {
					t.Errorf("chunk %d has non-positive duration %v", i, s.duration)
				}
				if s.duration > tc.chunkSeconds+1e-9 {
					t.Errorf("chunk %d duration %v exceeds target %v", i, s.duration, tc.chunkSeconds)
				}
				if i > 0 {
					prev := spans[i-1]
					if math.Abs(s.start-(prev.start+prev.duration)) > 1e-9 {
						t.Errorf("chunk %d start %v does not follow previous end %v", i, s.start, prev.start+prev.duration)
					}
				}
				sum += s.duration
			}
			if math.Abs(sum-tc.total) > 1e-9 {
				t.Errorf("durations sum to %v, expected %v", sum, tc.total)
			}
			if spans[0].start != 0 {
				t.Errorf("first chunk must start at 0, got %v", spans[0].start)
			}
		})
	}
}

func TestChunkLayoutErrors(t *testing.T) {
	if _, err := chunkLayout(0, 300); !apperrors.IsKind(err, apperrors.KindInvalidAudio) {
		t.Errorf("expected INVALID_AUDIO for zero total, got %v", err)
	}
	if _, err := chunkLayout(600, 0); !apperrors.IsKind(err, apperrors.KindSplitFailed) {
		t.Errorf("expected SPLIT_FAILED for zero chunk duration, got %v", err)
	}
}

func TestSplitEmitsOrderedChunks(t *testing.T) {
	var invocations []Command
	tc := NewToolchain(Config{}, logger.Nop())
	tc.run = func(_ context.Context, cmd Command) (*Result, error) {
		invocations = append(invocations, cmd)
		return &Result{}, nil
	}

	chunks, err := tc.Split(context.Background(), "/tmp/in.flac", "/tmp/work", 720, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(invocations) != 3 {
		t.Fatalf("expected 3 ffmpeg invocations, got %d", len(invocations))
	}

	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has index %d", i, c.Index)
		}
		if i > 0 {
			prev := chunks[i-1]
			if math.Abs(c.Start-(prev.Start+prev.Duration)) > 1e-9 {
				t.Errorf("chunk %d start %v does not follow previous", i, c.Start)
			}
		}
	}
	if chunks[2].Path != "/tmp/work/chunk_0002.flac" {
		t.Errorf("unexpected chunk path %q", chunks[2].Path)
	}
}

func TestSplitAbortsOnCutFailure(t *testing.T) {
	calls := 0
	tc := NewToolchain(Config{}, logger.Nop())
	tc.run = func(_ context.Context, _ Command) (*Result, error) {
		calls++
		if calls == 2 {
			return nil, fmt.Errorf("ffmpeg: exit 1")
		}
		return &Result{}, nil
	}

	chunks, err := tc.Split(context.Background(), "/tmp/in.flac", "/tmp/work", 720, 300)
	if !apperrors.IsKind(err, apperrors.KindSplitFailed) {
		t.Fatalf("expected SPLIT_FAILED, got %v", err)
	}
	if chunks != nil {
		t.Error("no partial chunk set may be returned")
	}
	if calls != 2 {
		t.Errorf("expected split to stop at the failing cut, made %d calls", calls)
	}
}
