// Package ingest runs the end-to-end audio ingestion pipeline: probe the
// upload, compress and split it when it exceeds the recognition service's
// request ceiling, transcribe the chunks sequentially under the shared
// call quota, and stitch the chunk transcripts into globally-timestamped
// segments.
//
// The pipeline is deterministic for a given input: chunks are transcribed
// in chronological order and the fingerprint-keyed transcript cache makes
// repeated uploads of the same audio free.
package ingest
