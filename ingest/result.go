package ingest

import (
	"strings"

	"github.com/kbukum/audiopipe/transcription"
)

// Result is the outcome of one ingestion run.
type Result struct {
	// Fingerprint is the SHA-256 content hash of the uploaded audio.
	Fingerprint string `json:"fingerprint"`
	// Segments is the final transcript in chronological order.
	Segments []transcription.Segment `json:"segments"`
	// Text is the full transcript text.
	Text string `json:"text"`
	// Duration is the audio duration in seconds. Zero for cache hits,
	// where the original probe result is no longer available.
	Duration float64 `json:"duration"`
	// Chunks is the number of chunks transcribed. 1 when no split happened.
	Chunks int `json:"chunks"`
	// FailedChunks lists chunk indexes skipped under partial acceptance.
	// Empty on fully successful runs.
	FailedChunks []int `json:"failed_chunks,omitempty"`
	// FromCache is true when the transcript was served without processing.
	FromCache bool `json:"from_cache"`
}

func joinText(segments []transcription.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}
