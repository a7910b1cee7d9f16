package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the structured pipeline error type.
type Error struct {
	// Kind is the machine-readable failure category.
	Kind Kind `json:"kind"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
	// ChunkIndex identifies the failed chunk for transcription failures.
	// -1 when the failure is not chunk-scoped.
	ChunkIndex int `json:"chunk_index,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.ChunkIndex >= 0 {
		msg = fmt.Sprintf("%s: %s (chunk %d)", e.Kind, e.Message, e.ChunkIndex)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &Error{Kind: KindProbeFailed}) matches regardless of
// message or cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, ChunkIndex: -1}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// --- Common Error Constructors ---

// InvalidAudio creates an error for undecodable or zero-duration input.
func InvalidAudio(message string) *Error {
	return New(KindInvalidAudio, message)
}

// ProbeFailed creates an error for a failed metadata probe.
func ProbeFailed(cause error) *Error {
	return New(KindProbeFailed, "audio probe failed").WithCause(cause)
}

// CompressionFailed creates an error for a failed re-encode.
func CompressionFailed(cause error) *Error {
	return New(KindCompressionFailed, "audio compression failed").WithCause(cause)
}

// SplitFailed creates an error for a failed chunk cut.
func SplitFailed(cause error) *Error {
	return New(KindSplitFailed, "audio split failed").WithCause(cause)
}

// ChunkTranscription creates an error for a failed recognition call,
// identifying the chunk that failed.
func ChunkTranscription(chunkIndex int, cause error) *Error {
	e := New(KindChunkTranscription, "chunk transcription failed").WithCause(cause)
	e.ChunkIndex = chunkIndex
	return e
}

// StitchInvariant creates an error for a violated segment invariant.
func StitchInvariant(message string) *Error {
	return New(KindStitchInvariant, message)
}

// --- Inspection helpers ---

// KindOf extracts the Kind from an error chain. Returns the empty Kind if
// the chain contains no *Error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ChunkIndexOf extracts the failed chunk index from an error chain.
// Returns -1 if the chain contains no chunk-scoped *Error.
func ChunkIndexOf(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.ChunkIndex
	}
	return -1
}

// IsKind reports whether the error chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
