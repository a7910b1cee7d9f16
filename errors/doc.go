// Package errors provides the structured error type used across the audio
// pipeline. Every fatal pipeline failure is reported as an *Error carrying a
// machine-readable Kind identifying the phase that failed and, for
// transcription failures, the index of the chunk that failed.
//
// Errors are never retried inside the pipeline; the caller inspects the Kind
// to decide whether a full re-ingestion is worthwhile.
package errors
