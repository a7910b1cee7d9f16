package media

import (
	apperrors "github.com/kbukum/audiopipe/errors"
)

// Size limits imposed by the recognition service.
const (
	// MaxRequestBytes is the hard per-request payload ceiling.
	MaxRequestBytes = 25 * 1024 * 1024
	// TargetChunkBytes is the per-chunk size target, kept under the ceiling
	// so bitrate estimation error cannot push a chunk over it.
	TargetChunkBytes = 20 * 1024 * 1024
)

// Chunk duration bounds. The bitrate-derived target is clamped into this
// range regardless of how the estimate comes out.
const (
	// MinChunkSeconds is the chunk duration floor.
	MinChunkSeconds = 60.0
	// MaxChunkSeconds is the chunk duration ceiling.
	MaxChunkSeconds = 300.0
	// chunkSafetyFactor shrinks the bitrate-derived duration so variable
	// bitrate cannot push a chunk over TargetChunkBytes.
	chunkSafetyFactor = 0.9
)

// BuildPlan decides, from raw size and duration, whether a recording fits a
// single request as-is or must be compressed first. Splitting is never
// decided here: the split decision requires the actual compressed size, so
// it is made by WithCompressedSize after compression has run.
func BuildPlan(sizeBytes int64, durationSeconds float64) (Plan, error) {
	if durationSeconds <= 0 {
		return Plan{}, apperrors.InvalidAudio("audio duration is zero")
	}
	if sizeBytes <= 0 {
		return Plan{}, apperrors.InvalidAudio("audio is empty")
	}
	if sizeBytes <= MaxRequestBytes {
		return Plan{}, nil
	}
	return Plan{NeedsCompression: true}, nil
}

// WithCompressedSize re-evaluates the plan against the actual compressed
// size. If compression alone brought the file under the ceiling, no split
// happens; otherwise the chunk duration is derived from the observed
// compressed bitrate.
func (p Plan) WithCompressedSize(sizeBytes int64, durationSeconds float64) Plan {
	if sizeBytes <= MaxRequestBytes {
		p.NeedsSplitting = false
		p.ChunkSeconds = 0
		return p
	}
	p.NeedsSplitting = true
	p.ChunkSeconds = chunkSecondsFor(sizeBytes, durationSeconds)
	return p
}

// chunkSecondsFor derives the target chunk duration from the observed
// bytes-per-second of the compressed file, clamped into the allowed range.
func chunkSecondsFor(sizeBytes int64, durationSeconds float64) float64 {
	bytesPerSecond := float64(sizeBytes) / durationSeconds
	target := (TargetChunkBytes / bytesPerSecond) * chunkSafetyFactor
	if target < MinChunkSeconds {
		return MinChunkSeconds
	}
	if target > MaxChunkSeconds {
		return MaxChunkSeconds
	}
	return target
}
