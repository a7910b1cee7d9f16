package media

// Info holds the metadata of a probed audio file.
type Info struct {
	// Duration is the audio duration in seconds.
	Duration float64
	// SizeBytes is the container byte size.
	SizeBytes int64
	// Codec is the audio codec name reported by the probe.
	Codec string
	// SampleRate is the sample rate in Hz.
	SampleRate int
	// Channels is the channel count.
	Channels int
}

// Chunk is one physically extracted, already-compressed slice of a
// recording. Chunks are created by the splitter, consumed in index order by
// the transcription driver, and deleted with the ingestion workspace.
type Chunk struct {
	// Path is the chunk file location.
	Path string
	// Index is the zero-based position in chronological order.
	Index int
	// Start is the offset of this chunk in the source recording, seconds.
	Start float64
	// Duration is the chunk length in seconds.
	Duration float64
}

// Plan records what preparation a recording needs before transcription.
// A Plan is derived once per ingestion and never mutated afterwards;
// WithCompressedSize returns a new value.
type Plan struct {
	// NeedsCompression is true when the raw input exceeds the request ceiling.
	NeedsCompression bool
	// NeedsSplitting is true when even the compressed file exceeds the
	// ceiling. Only ever true after compression has actually happened.
	NeedsSplitting bool
	// ChunkSeconds is the target chunk duration. Set only when splitting.
	ChunkSeconds float64
}
