// Package transcription defines the provider interface and common types
// for the speech-to-text backends the pipeline can call.
//
// A Fragment is one timestamped piece of recognized text as the backend
// returned it; timestamps are relative to the submitted file, which for a
// split recording means relative to the chunk, not the whole recording.
// Offsetting onto the global timeline is the ingest package's job.
//
// # Backends
//
//   - transcription/whisper: faster-whisper HTTP sidecar
//   - transcription/azure: Azure OpenAI Whisper deployment
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(whisper.ProviderName, whisper.Factory())
//	p, err := reg.Create(whisper.ProviderName, map[string]any{"url": "http://localhost:8387"})
package transcription
