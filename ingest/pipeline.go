package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kbukum/audiopipe/cache"
	apperrors "github.com/kbukum/audiopipe/errors"
	"github.com/kbukum/audiopipe/identity"
	"github.com/kbukum/audiopipe/logger"
	"github.com/kbukum/audiopipe/media"
	"github.com/kbukum/audiopipe/metrics"
	"github.com/kbukum/audiopipe/quota"
	"github.com/kbukum/audiopipe/transcription"
)

// Toolchain is the subset of the media toolchain the pipeline needs.
// *media.Toolchain satisfies it; tests substitute fakes.
type Toolchain interface {
	Probe(ctx context.Context, path string) (*media.Info, error)
	Compress(ctx context.Context, inputPath, outputPath string) (int64, error)
	Split(ctx context.Context, inputPath, outDir string, totalDuration, chunkSeconds float64) ([]media.Chunk, error)
}

// Store is the transcript persistence contract the pipeline consults for
// deduplication and status tracking. *cache.TranscriptStore satisfies it.
type Store interface {
	LoadTranscript(ctx context.Context, fingerprint string) ([]transcription.Segment, bool, error)
	SaveTranscript(ctx context.Context, fingerprint string, segments []transcription.Segment) error
	SetStatus(ctx context.Context, fingerprint string, status cache.Status) error
}

// Pipeline orchestrates a complete ingestion: probe, plan, prepare,
// transcribe, stitch. A single Pipeline serves many ingestions; the quota
// window it holds is the shared synchronization point between them.
type Pipeline struct {
	cfg      Config
	tools    Toolchain
	provider transcription.Provider
	limiter  *quota.Window
	store    Store
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewPipeline creates a pipeline. The transcript store and metrics are
// optional and attached with WithStore / WithMetrics.
func NewPipeline(cfg Config, tools Toolchain, provider transcription.Provider, limiter *quota.Window, log *logger.Logger) *Pipeline {
	cfg.ApplyDefaults()
	return &Pipeline{
		cfg:      cfg,
		tools:    tools,
		provider: provider,
		limiter:  limiter,
		metrics:  metrics.New(prometheus.NewRegistry()),
		log:      log.WithComponent("ingest"),
	}
}

// WithStore attaches a transcript cache and returns the receiver.
func (p *Pipeline) WithStore(store Store) *Pipeline {
	p.store = store
	return p
}

// WithMetrics replaces the default unexported registry with shared
// instrumentation and returns the receiver.
func (p *Pipeline) WithMetrics(m *metrics.Metrics) *Pipeline {
	p.metrics = m
	return p
}

// Ingest runs the full pipeline on an uploaded recording and returns the
// final transcript. Identical uploads are answered from the transcript
// cache when one is attached.
func (p *Pipeline) Ingest(ctx context.Context, audio []byte) (*Result, error) {
	started := time.Now()

	if len(audio) == 0 {
		return nil, apperrors.InvalidAudio("audio is empty")
	}

	fingerprint := identity.Fingerprint(audio)
	log := p.log.WithAudio(fingerprint)
	p.metrics.RecordIngestStarted()

	if p.store != nil {
		segments, found, err := p.store.LoadTranscript(ctx, fingerprint)
		if err != nil {
			log.Warn("transcript cache lookup failed", logger.Fields(logger.FieldError, err.Error()))
		} else {
			p.metrics.RecordCacheLookup(found)
		}
		if found {
			log.Info("transcript served from cache", logger.Fields("segments", len(segments)))
			return &Result{
				Fingerprint: fingerprint,
				Segments:    segments,
				Text:        joinText(segments),
				Chunks:      0,
				FromCache:   true,
			}, nil
		}
	}

	result, err := p.process(ctx, fingerprint, audio, log)
	if err != nil {
		p.metrics.RecordIngestFailed(string(apperrors.KindOf(err)))
		if p.store != nil {
			_ = p.store.SetStatus(ctx, fingerprint, cache.StatusFailed)
		}
		log.Error("ingestion failed", logger.Fields(logger.FieldError, err.Error()))
		return nil, err
	}

	elapsed := time.Since(started)
	p.metrics.RecordIngestCompleted(elapsed.Seconds(), len(result.Segments))

	if p.store != nil {
		if err := p.store.SaveTranscript(ctx, fingerprint, result.Segments); err != nil {
			log.Warn("transcript cache save failed", logger.Fields(logger.FieldError, err.Error()))
		}
		_ = p.store.SetStatus(ctx, fingerprint, cache.StatusCompleted)
	}

	log.Info("ingestion completed", logger.Fields(
		logger.FieldDuration, elapsed.Milliseconds(),
		logger.FieldChunks, result.Chunks,
		"segments", len(result.Segments),
	))
	return result, nil
}

// process runs the probe-prepare-transcribe-stitch sequence inside a
// per-run scratch directory.
func (p *Pipeline) process(ctx context.Context, fingerprint string, audio []byte, log *logger.Logger) (*Result, error) {
	if p.store != nil {
		_ = p.store.SetStatus(ctx, fingerprint, cache.StatusProcessing)
	}

	workDir := filepath.Join(p.cfg.WorkDir, "ingest-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	if !p.cfg.KeepArtifacts {
		defer os.RemoveAll(workDir)
	}

	inputPath := filepath.Join(workDir, "input.audio")
	if err := os.WriteFile(inputPath, audio, 0o600); err != nil {
		return nil, fmt.Errorf("write input: %w", err)
	}

	info, err := p.tools.Probe(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	log.Info("audio probed", logger.Fields(
		logger.FieldSeconds, info.Duration,
		logger.FieldSizeBytes, info.SizeBytes,
		"codec", info.Codec,
	))

	plan, err := media.BuildPlan(info.SizeBytes, info.Duration)
	if err != nil {
		return nil, err
	}

	audioPath := inputPath
	if plan.NeedsCompression {
		compressedPath := filepath.Join(workDir, "compressed.flac")
		size, err := p.tools.Compress(ctx, inputPath, compressedPath)
		if err != nil {
			return nil, err
		}
		p.metrics.RecordCompression(size)
		plan = plan.WithCompressedSize(size, info.Duration)
		audioPath = compressedPath
		log.Info("audio compressed", logger.Fields(
			logger.FieldSizeBytes, size,
			"needs_splitting", plan.NeedsSplitting,
		))
	}

	var chunks []media.Chunk
	if plan.NeedsSplitting {
		chunks, err = p.tools.Split(ctx, audioPath, workDir, info.Duration, plan.ChunkSeconds)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			p.metrics.RecordChunk(c.Duration)
		}
		log.Info("audio split", logger.Fields(
			logger.FieldChunks, len(chunks),
			"chunk_seconds", plan.ChunkSeconds,
		))
	} else {
		chunks = []media.Chunk{{Path: audioPath, Index: 0, Start: 0, Duration: info.Duration}}
	}

	d := &driver{
		provider:       p.provider,
		limiter:        p.limiter,
		metrics:        p.metrics,
		log:            log,
		language:       p.cfg.Language,
		allowPartial:   p.cfg.AllowPartial,
		segmentSeconds: p.cfg.SegmentSeconds,
	}
	fragments, failedChunks, err := d.run(ctx, chunks)
	if err != nil {
		return nil, err
	}

	segments := rebucket(fragments, p.cfg.SegmentSeconds)
	if err := checkSegments(segments); err != nil {
		return nil, err
	}

	return &Result{
		Fingerprint:  fingerprint,
		Segments:     segments,
		Text:         joinText(segments),
		Duration:     info.Duration,
		Chunks:       len(chunks),
		FailedChunks: failedChunks,
	}, nil
}
