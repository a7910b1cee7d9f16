package ingest

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/logger"
	"github.com/kbukum/audiopipe/media"
	"github.com/kbukum/audiopipe/metrics"
	"github.com/kbukum/audiopipe/quota"
	"github.com/kbukum/audiopipe/transcription"
)

// driver walks the chunk list in chronological order and turns each chunk
// into globally-timestamped fragments. Every recognition call first passes
// through the shared quota window, so concurrent ingestions in the same
// process still respect the service limit together.
type driver struct {
	provider transcription.Provider
	limiter  *quota.Window
	metrics  *metrics.Metrics
	log      *logger.Logger

	language       string
	allowPartial   bool
	segmentSeconds float64
}

// run transcribes all chunks sequentially. On the first failure it aborts
// unless partial acceptance is enabled, in which case the failed chunk is
// recorded and skipped. A run where every chunk failed is an error even
// under partial acceptance.
func (d *driver) run(ctx context.Context, chunks []media.Chunk) ([]transcription.Fragment, []int, error) {
	var all []transcription.Fragment
	var failed []int
	var lastErr error

	for _, chunk := range chunks {
		fragments, err := d.transcribeChunk(ctx, chunk)
		if err != nil {
			if ctx.Err() != nil || !d.allowPartial {
				return nil, nil, err
			}
			d.log.Warn("chunk failed, continuing", logger.Fields(
				logger.FieldChunk, chunk.Index,
				logger.FieldError, err.Error(),
			))
			failed = append(failed, chunk.Index)
			lastErr = err
			continue
		}
		all = append(all, fragments...)
	}

	if len(failed) == len(chunks) {
		return nil, nil, lastErr
	}
	return all, failed, nil
}

func (d *driver) transcribeChunk(ctx context.Context, chunk media.Chunk) ([]transcription.Fragment, error) {
	waitStart := time.Now()
	if err := d.limiter.Acquire(ctx); err != nil {
		return nil, apperrors.ChunkTranscription(chunk.Index, err)
	}
	d.metrics.RecordRateLimitWait(time.Since(waitStart).Seconds())

	d.log.Debug("transcribing chunk", logger.Fields(
		logger.FieldChunk, chunk.Index,
		logger.FieldProvider, d.provider.Name(),
		logger.FieldSeconds, chunk.Duration,
	))

	callStart := time.Now()
	resp, err := d.provider.Transcribe(ctx, transcription.Request{
		AudioPath:      chunk.Path,
		Language:       d.language,
		WantTimestamps: true,
	})
	elapsed := time.Since(callStart).Seconds()
	if err != nil {
		d.metrics.RecordTranscription(false, elapsed)
		return nil, apperrors.ChunkTranscription(chunk.Index, err)
	}
	d.metrics.RecordTranscription(true, elapsed)

	fragments := resp.Fragments
	if len(fragments) == 0 && strings.TrimSpace(resp.Text) != "" {
		// Backend returned text without timestamps; estimate boundaries
		// from the speaking rate.
		fragments = transcription.EstimateFragments(resp.Text, d.segmentSeconds)
	}
	return offsetFragments(fragments, chunk.Start), nil
}
