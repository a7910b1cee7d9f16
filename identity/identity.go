package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex-encoded SHA-256 of the raw audio bytes.
// It is the idempotency key for an ingestion: deterministic, content-only,
// independent of file name or upload time.
func Fingerprint(audio []byte) string {
	sum := sha256.Sum256(audio)
	return hex.EncodeToString(sum[:])
}

// Short returns a prefix of a fingerprint suitable for log fields and
// workspace directory names.
func Short(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
