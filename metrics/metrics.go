package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the ingestion pipeline.
type Metrics struct {
	// Ingestion metrics
	IngestsStarted   prometheus.Counter
	IngestsCompleted prometheus.Counter
	IngestsFailed    *prometheus.CounterVec
	IngestDuration   prometheus.Histogram
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter

	// Preparation metrics
	Compressions       prometheus.Counter
	CompressedBytes    prometheus.Histogram
	ChunksProduced     prometheus.Counter
	ChunkSeconds       prometheus.Histogram

	// Transcription metrics
	TranscriptionCalls     prometheus.Counter
	TranscriptionSuccesses prometheus.Counter
	TranscriptionFailures  prometheus.Counter
	TranscriptionDuration  prometheus.Histogram
	RateLimitWait          prometheus.Histogram

	// Output metrics
	SegmentsProduced prometheus.Counter
}

// New creates and registers all pipeline metrics on the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		IngestsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_ingests_started_total",
			Help: "Total number of ingestion runs started",
		}),
		IngestsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_ingests_completed_total",
			Help: "Total number of ingestion runs completed successfully",
		}),
		IngestsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audiopipe_ingests_failed_total",
			Help: "Total number of failed ingestion runs by error kind",
		}, []string{"kind"}),
		IngestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiopipe_ingest_duration_seconds",
			Help:    "Wall time of complete ingestion runs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~1 hour
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_transcript_cache_hits_total",
			Help: "Total number of ingests served from the transcript cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_transcript_cache_misses_total",
			Help: "Total number of ingests that missed the transcript cache",
		}),

		Compressions: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_compressions_total",
			Help: "Total number of compression passes run",
		}),
		CompressedBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiopipe_compressed_size_bytes",
			Help:    "Size of audio after the compression pass",
			Buckets: prometheus.ExponentialBuckets(1<<20, 2, 8), // 1MB to ~128MB
		}),
		ChunksProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_chunks_produced_total",
			Help: "Total number of audio chunks cut for transcription",
		}),
		ChunkSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiopipe_chunk_duration_seconds",
			Help:    "Duration of cut audio chunks",
			Buckets: prometheus.LinearBuckets(60, 30, 9), // 60s to 300s
		}),

		TranscriptionCalls: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_transcription_calls_total",
			Help: "Total number of transcription calls issued",
		}),
		TranscriptionSuccesses: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_transcription_successes_total",
			Help: "Total number of successful transcription calls",
		}),
		TranscriptionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_transcription_failures_total",
			Help: "Total number of failed transcription calls",
		}),
		TranscriptionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiopipe_transcription_duration_seconds",
			Help:    "Duration of transcription calls",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~8 minutes
		}),
		RateLimitWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audiopipe_rate_limit_wait_seconds",
			Help:    "Time spent waiting for a rate-limit slot before a call",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~1 minute
		}),

		SegmentsProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "audiopipe_segments_produced_total",
			Help: "Total number of transcript segments emitted",
		}),
	}
}

// RecordIngestStarted increments the started counter.
func (m *Metrics) RecordIngestStarted() {
	m.IngestsStarted.Inc()
}

// RecordIngestCompleted records a successful run and its wall time.
func (m *Metrics) RecordIngestCompleted(durationSeconds float64, segmentCount int) {
	m.IngestsCompleted.Inc()
	m.IngestDuration.Observe(durationSeconds)
	m.SegmentsProduced.Add(float64(segmentCount))
}

// RecordIngestFailed records a failed run labeled by error kind.
func (m *Metrics) RecordIngestFailed(kind string) {
	m.IngestsFailed.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records the outcome of a transcript cache lookup.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}

// RecordCompression records a compression pass and the resulting size.
func (m *Metrics) RecordCompression(sizeBytes int64) {
	m.Compressions.Inc()
	m.CompressedBytes.Observe(float64(sizeBytes))
}

// RecordChunk records one cut chunk and its duration.
func (m *Metrics) RecordChunk(durationSeconds float64) {
	m.ChunksProduced.Inc()
	m.ChunkSeconds.Observe(durationSeconds)
}

// RecordTranscription records one transcription call outcome.
func (m *Metrics) RecordTranscription(success bool, durationSeconds float64) {
	m.TranscriptionCalls.Inc()
	m.TranscriptionDuration.Observe(durationSeconds)
	if success {
		m.TranscriptionSuccesses.Inc()
	} else {
		m.TranscriptionFailures.Inc()
	}
}

// RecordRateLimitWait records time spent waiting on the call quota.
func (m *Metrics) RecordRateLimitWait(waitSeconds float64) {
	m.RateLimitWait.Observe(waitSeconds)
}
