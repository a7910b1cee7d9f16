package transcription

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// WantTimestamps requests time-aligned fragments. Backends that cannot
	// produce timestamps return text only; see EstimateFragments.
	WantTimestamps bool `json:"want_timestamps"`
}

// Response holds the result of a transcription call.
type Response struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Fragments contains time-aligned transcript fragments, timestamped
	// relative to the submitted file.
	Fragments []Fragment `json:"fragments,omitempty"`
	// Duration is the audio duration in seconds, if reported.
	Duration float64 `json:"duration,omitempty"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
}

// Fragment is one timestamped piece of recognized text, usually
// sub-sentence sized.
type Fragment struct {
	// Start is the fragment start time in seconds.
	Start float64 `json:"start"`
	// End is the fragment end time in seconds.
	End float64 `json:"end"`
	// Text is the recognized text.
	Text string `json:"text"`
}

// Segment is the final analysis-granularity transcript unit produced by
// merging fragments into windows of a target duration.
type Segment struct {
	// Start is the segment start time in seconds, on the global timeline.
	Start float64 `json:"start"`
	// End is the segment end time in seconds, on the global timeline.
	End float64 `json:"end"`
	// Text is the merged transcript text.
	Text string `json:"text"`
}
