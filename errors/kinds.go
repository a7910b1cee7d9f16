package errors

// Kind is a machine-readable failure category.
type Kind string

// Pipeline failure kinds, one per phase that can fail an ingestion.
const (
	// KindInvalidAudio indicates the input has zero duration or is not
	// decodable audio.
	KindInvalidAudio Kind = "INVALID_AUDIO"
	// KindProbeFailed indicates the metadata probe could not be completed.
	KindProbeFailed Kind = "PROBE_FAILED"
	// KindCompressionFailed indicates the re-encode to the low-bitrate
	// target failed.
	KindCompressionFailed Kind = "COMPRESSION_FAILED"
	// KindSplitFailed indicates cutting the compressed audio into chunks
	// failed. No partial chunk set is ever kept.
	KindSplitFailed Kind = "SPLIT_FAILED"
	// KindChunkTranscription indicates a recognition call for one chunk
	// failed. The error carries the chunk index.
	KindChunkTranscription Kind = "CHUNK_TRANSCRIPTION_FAILED"
	// KindStitchInvariant indicates the merged segments violated ordering
	// or overlap invariants. Unreachable if upstream stages are correct.
	KindStitchInvariant Kind = "STITCH_INVARIANT_VIOLATION"
)
