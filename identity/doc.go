// Package identity derives the content fingerprint used to deduplicate
// audio ingestions. Byte-identical uploads always produce the same
// fingerprint, so a completed transcript can be served from the cache
// instead of re-running the rate-limited pipeline.
package identity
