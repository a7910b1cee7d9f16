package ingest

import (
	"strings"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/transcription"
)

// offsetFragments shifts chunk-local fragment timestamps into the global
// timeline of the source recording.
func offsetFragments(fragments []transcription.Fragment, offset float64) []transcription.Fragment {
	if offset == 0 {
		return fragments
	}
	shifted := make([]transcription.Fragment, len(fragments))
	for i, f := range fragments {
		shifted[i] = transcription.Fragment{
			Start: f.Start + offset,
			End:   f.End + offset,
			Text:  f.Text,
		}
	}
	return shifted
}

// rebucket coalesces recognition fragments into segments of roughly
// targetSeconds each. A fragment that would stretch the open segment past
// the target closes it and seeds the next one, so segments are
// fragment-aligned: no fragment text is ever split across two segments.
func rebucket(fragments []transcription.Fragment, targetSeconds float64) []transcription.Segment {
	var segments []transcription.Segment
	var start, end float64
	var parts []string

	for _, f := range fragments {
		if len(parts) > 0 && f.End-start > targetSeconds {
			segments = append(segments, transcription.Segment{
				Start: start,
				End:   end,
				Text:  strings.Join(parts, " "),
			})
			parts = nil
		}
		if len(parts) == 0 {
			start = f.Start
		}
		if text := strings.TrimSpace(f.Text); text != "" {
			parts = append(parts, text)
		}
		end = f.End
	}

	// Flush the final open segment.
	if len(parts) > 0 {
		segments = append(segments, transcription.Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(parts, " "),
		})
	}
	return segments
}

// checkSegments verifies the output invariants: timestamps ordered within
// each segment, segments chronologically ordered and non-overlapping, and
// no empty text.
func checkSegments(segments []transcription.Segment) error {
	var prevEnd float64
	for i, s := range segments {
		if s.End < s.Start {
			return apperrors.StitchInvariant("segment ends before it starts").
				WithDetail("segment", i).
				WithDetail("start", s.Start).
				WithDetail("end", s.End)
		}
		if s.Start < prevEnd {
			return apperrors.StitchInvariant("segments overlap").
				WithDetail("segment", i).
				WithDetail("start", s.Start).
				WithDetail("previous_end", prevEnd)
		}
		if strings.TrimSpace(s.Text) == "" {
			return apperrors.StitchInvariant("segment has no text").
				WithDetail("segment", i)
		}
		prevEnd = s.End
	}
	return nil
}
