// Package logger provides structured logging for the audio pipeline,
// built on zerolog.
//
// Every pipeline stage logs through a component-tagged Logger so that a
// single ingestion can be followed across probe, compression, splitting,
// transcription and stitching by its audio fingerprint.
//
// # Usage
//
//	log := logger.New(&logger.Config{Level: "info", Format: "json"}, "audiopipe")
//	log.WithComponent("driver").Info("chunk transcribed",
//	    logger.Fields(logger.FieldChunk, 2, logger.FieldDuration, 1834))
package logger
