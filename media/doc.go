// Package media prepares audio recordings for transcription against a
// service with a hard per-request payload ceiling.
//
// The Toolchain wraps the ffprobe/ffmpeg binaries: it probes metadata,
// re-encodes to a compact 16 kHz mono FLAC target, and cuts the compressed
// file into sequential time-bounded chunks. Planning is a pure function of
// observed size and duration; it is evaluated once against the raw size and
// re-evaluated against the actual compressed size before any cut is made.
package media
