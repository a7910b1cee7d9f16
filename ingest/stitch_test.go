package ingest

import (
	"testing"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/transcription"
)

func TestOffsetFragments(t *testing.T) {
	t.Run("shifts chunk-local timestamps by the chunk start", func(t *testing.T) {
		fragments := []transcription.Fragment{
			{Start: 5, End: 8, Text: "hello"},
			{Start: 8, End: 12, Text: "world"},
		}
		shifted := offsetFragments(fragments, 240)

		if shifted[0].Start != 245 || shifted[0].End != 248 {
			t.Errorf("expected [245,248], got [%v,%v]", shifted[0].Start, shifted[0].End)
		}
		if shifted[1].Start != 248 || shifted[1].End != 252 {
			t.Errorf("expected [248,252], got [%v,%v]", shifted[1].Start, shifted[1].End)
		}
		if fragments[0].Start != 5 {
			t.Error("input must not be mutated")
		}
	})

	t.Run("zero offset returns input unchanged", func(t *testing.T) {
		fragments := []transcription.Fragment{{Start: 1, End: 2, Text: "x"}}
		if got := offsetFragments(fragments, 0); &got[0] != &fragments[0] {
			t.Error("expected the same backing slice for zero offset")
		}
	})
}

func TestRebucket(t *testing.T) {
	t.Run("short fragments coalesce into one segment", func(t *testing.T) {
		fragments := []transcription.Fragment{
			{Start: 0, End: 4, Text: "a"},
			{Start: 4, End: 9, Text: "b"},
			{Start: 9, End: 14, Text: "c"},
		}
		segments := rebucket(fragments, 15)

		if len(segments) != 1 {
			t.Fatalf("expected 1 segment, got %d", len(segments))
		}
		if segments[0].Start != 0 || segments[0].End != 14 {
			t.Errorf("unexpected bounds [%v,%v]", segments[0].Start, segments[0].End)
		}
		if segments[0].Text != "a b c" {
			t.Errorf("unexpected text %q", segments[0].Text)
		}
	})

	t.Run("overflowing fragment seeds a new segment", func(t *testing.T) {
		fragments := []transcription.Fragment{
			{Start: 0, End: 10, Text: "a"},
			{Start: 10, End: 20, Text: "b"},
		}
		segments := rebucket(fragments, 15)

		// 20-0 exceeds the 15s target, so "b" must not join "a".
		if len(segments) != 2 {
			t.Fatalf("expected 2 segments, got %d", len(segments))
		}
		if segments[0].Start != 0 || segments[0].End != 10 || segments[0].Text != "a" {
			t.Errorf("unexpected first segment %+v", segments[0])
		}
		if segments[1].Start != 10 || segments[1].End != 20 || segments[1].Text != "b" {
			t.Errorf("unexpected second segment %+v", segments[1])
		}
	})

	t.Run("fragment inside the bound extends the segment", func(t *testing.T) {
		fragments := []transcription.Fragment{
			{Start: 0, End: 10, Text: "first"},
			{Start: 10, End: 14, Text: "second"},
		}
		segments := rebucket(fragments, 15)

		if len(segments) != 1 {
			t.Fatalf("expected 1 segment, got %d", len(segments))
		}
		if segments[0].End != 14 || segments[0].Text != "first second" {
			t.Errorf("unexpected segment %+v", segments[0])
		}
	})

	t.Run("single long fragment becomes a single long segment", func(t *testing.T) {
		segments := rebucket([]transcription.Fragment{{Start: 0, End: 20, Text: "long"}}, 15)
		if len(segments) != 1 || segments[0].End != 20 {
			t.Fatalf("expected one 20s segment, got %+v", segments)
		}
	})

	t.Run("empty-text fragments never produce segments", func(t *testing.T) {
		fragments := []transcription.Fragment{
			{Start: 0, End: 20, Text: "  "},
			{Start: 20, End: 40, Text: "speech"},
		}
		segments := rebucket(fragments, 15)
		if len(segments) != 1 {
			t.Fatalf("expected 1 segment, got %d", len(segments))
		}
		if segments[0].Start != 20 || segments[0].Text != "speech" {
			t.Errorf("unexpected segment %+v", segments[0])
		}
	})

	t.Run("no fragments produce no segments", func(t *testing.T) {
		if segments := rebucket(nil, 15); segments != nil {
			t.Errorf("expected nil, got %+v", segments)
		}
	})
}

func TestCheckSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []transcription.Segment
		wantErr  bool
	}{
		{
			"valid adjacent segments",
			[]transcription.Segment{
				{Start: 0, End: 15, Text: "a"},
				{Start: 15, End: 30, Text: "b"},
			},
			false,
		},
		{
			"valid segments with a gap",
			[]transcription.Segment{
				{Start: 0, End: 10, Text: "a"},
				{Start: 20, End: 30, Text: "b"},
			},
			false,
		},
		{"empty list", nil, false},
		{
			"end before start",
			[]transcription.Segment{{Start: 10, End: 5, Text: "a"}},
			true,
		},
		{
			"overlapping segments",
			[]transcription.Segment{
				{Start: 0, End: 15, Text: "a"},
				{Start: 10, End: 20, Text: "b"},
			},
			true,
		},
		{
			"empty text",
			[]transcription.Segment{{Start: 0, End: 5, Text: " "}},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSegments(tc.segments)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !apperrors.IsKind(err, apperrors.KindStitchInvariant) {
					t.Errorf("expected stitch invariant kind, got %v", apperrors.KindOf(err))
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
