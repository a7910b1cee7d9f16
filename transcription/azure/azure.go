// Package azure implements transcription.Provider against an Azure OpenAI
// Whisper deployment.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kbukum/audiopipe/transcription"
)

const (
	// ProviderName is the registered name for the Azure Whisper provider.
	ProviderName = "azure"

	defaultAPIVersion = "2024-06-01"
	defaultDeployment = "whisper"
	defaultTimeout    = 300 * time.Second
)

// Config holds configuration for the Azure Whisper provider.
type Config struct {
	// Endpoint is the Azure OpenAI resource base URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
	// Deployment is the Whisper deployment name.
	Deployment string `json:"deployment" yaml:"deployment" mapstructure:"deployment"`
	// APIKey authenticates requests via the api-key header.
	APIKey string `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	// APIVersion selects the service API version.
	APIVersion string `json:"api_version" yaml:"api_version" mapstructure:"api_version"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using the Azure OpenAI audio
// transcriptions endpoint.
type Provider struct {
	cfg    Config
	client *http.Client
}

// NewProvider creates a new Azure Whisper provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Deployment == "" {
		cfg.Deployment = defaultDeployment
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Factory returns a transcription.Factory that creates Azure providers
// from a generic config map.
func Factory() transcription.Factory {
	return func(cfg map[string]any) (transcription.Provider, error) {
		ac := Config{}
		if v, ok := cfg["endpoint"].(string); ok {
			ac.Endpoint = v
		}
		if v, ok := cfg["deployment"].(string); ok {
			ac.Deployment = v
		}
		if v, ok := cfg["api_key"].(string); ok {
			ac.APIKey = v
		}
		if v, ok := cfg["api_version"].(string); ok {
			ac.APIVersion = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			ac.Timeout = v
		}
		if ac.Endpoint == "" {
			return nil, fmt.Errorf("azure: endpoint is required")
		}
		return NewProvider(ac), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured. Azure has no
// unauthenticated health endpoint, so this only checks configuration.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.Endpoint != "" && p.cfg.APIKey != ""
}

// Transcribe uploads an audio file to the Azure Whisper deployment and
// returns the transcription. With WantTimestamps the verbose response
// format is requested so segment timestamps come back.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Response, error) {
	audioData, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "audio.flac")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audioData); err != nil {
		return nil, fmt.Errorf("write audio data: %w", err)
	}

	if req.WantTimestamps {
		_ = writer.WriteField("response_format", "verbose_json")
		_ = writer.WriteField("timestamp_granularities[]", "segment")
	} else {
		_ = writer.WriteField("response_format", "json")
	}
	if req.Language != "" {
		_ = writer.WriteField("language", req.Language)
	}
	writer.Close()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.transcriptionsURL(), &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("api-key", p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("azure request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("azure error (status %d): %s", resp.StatusCode, string(body))
	}

	var result azureResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode azure response: %w", err)
	}

	return toResponse(&result), nil
}

// transcriptionsURL builds the deployment-scoped transcriptions endpoint.
func (p *Provider) transcriptionsURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/audio/transcriptions?api-version=%s",
		strings.TrimRight(p.cfg.Endpoint, "/"), p.cfg.Deployment, p.cfg.APIVersion)
}

// --- Azure verbose_json response types ---

type azureResponse struct {
	Text     string         `json:"text"`
	Segments []azureSegment `json:"segments"`
	Language string         `json:"language"`
	Duration float64        `json:"duration"`
}

type azureSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func toResponse(resp *azureResponse) *transcription.Response {
	fragments := make([]transcription.Fragment, len(resp.Segments))
	for i, seg := range resp.Segments {
		fragments[i] = transcription.Fragment{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		}
	}

	duration := resp.Duration
	if duration == 0 && len(resp.Segments) > 0 {
		duration = resp.Segments[len(resp.Segments)-1].End
	}

	return &transcription.Response{
		Text:      strings.TrimSpace(resp.Text),
		Fragments: fragments,
		Duration:  duration,
		Language:  resp.Language,
	}
}
