// Package cache provides the Redis-backed transcript store that makes
// ingestion idempotent.
//
// Completed segment lists are stored under the audio fingerprint with a
// TTL, and a short-lived status key tracks in-flight processing. The
// pipeline itself stays stateless: it consults the store before running
// and writes back on success, nothing more.
package cache
