package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/audiopipe/transcription"
)

// Status tracks where an ingestion currently is.
type Status string

// Ingestion status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

const (
	transcriptKeyPrefix = "transcript"
	statusKeyPrefix     = "status"
)

// TranscriptStore persists completed transcripts and processing status,
// keyed by audio fingerprint.
type TranscriptStore struct {
	client *Client
}

// NewTranscriptStore creates a store backed by the given client.
func NewTranscriptStore(client *Client) *TranscriptStore {
	return &TranscriptStore{client: client}
}

// SaveTranscript stores the final segment list for a fingerprint with the
// configured transcript TTL.
func (s *TranscriptStore) SaveTranscript(ctx context.Context, fingerprint string, segments []transcription.Segment) error {
	data, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("marshal transcript %q: %w", fingerprint, err)
	}
	key := transcriptKeyPrefix + ":" + fingerprint
	if err := s.client.set(ctx, key, string(data), s.client.cfg.TranscriptTTL); err != nil {
		return fmt.Errorf("save transcript %q: %w", fingerprint, err)
	}
	return nil
}

// LoadTranscript fetches a previously stored segment list.
// The second return value reports whether the fingerprint was found.
func (s *TranscriptStore) LoadTranscript(ctx context.Context, fingerprint string) ([]transcription.Segment, bool, error) {
	raw, err := s.client.get(ctx, transcriptKeyPrefix+":"+fingerprint)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load transcript %q: %w", fingerprint, err)
	}

	var segments []transcription.Segment
	if err := json.Unmarshal([]byte(raw), &segments); err != nil {
		return nil, false, fmt.Errorf("unmarshal transcript %q: %w", fingerprint, err)
	}
	return segments, true, nil
}

// DeleteTranscript drops a stored transcript, forcing the next upload of
// the same audio to reprocess.
func (s *TranscriptStore) DeleteTranscript(ctx context.Context, fingerprint string) error {
	if err := s.client.del(ctx, transcriptKeyPrefix+":"+fingerprint); err != nil {
		return fmt.Errorf("delete transcript %q: %w", fingerprint, err)
	}
	return nil
}

// SetStatus records the processing status for a fingerprint with the
// configured status TTL.
func (s *TranscriptStore) SetStatus(ctx context.Context, fingerprint string, status Status) error {
	key := statusKeyPrefix + ":" + fingerprint
	if err := s.client.set(ctx, key, string(status), s.client.cfg.StatusTTL); err != nil {
		return fmt.Errorf("set status %q: %w", fingerprint, err)
	}
	return nil
}

// GetStatus fetches the processing status for a fingerprint.
// The second return value reports whether a status was found.
func (s *TranscriptStore) GetStatus(ctx context.Context, fingerprint string) (Status, bool, error) {
	raw, err := s.client.get(ctx, statusKeyPrefix+":"+fingerprint)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get status %q: %w", fingerprint, err)
	}
	return Status(raw), true, nil
}
