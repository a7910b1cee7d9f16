// Package metrics exposes Prometheus instrumentation for the ingestion
// pipeline: run outcomes, cache effectiveness, chunking behavior and
// transcription call latency including rate-limit waits.
package metrics
