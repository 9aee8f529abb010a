package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kwameadu/doc-studio-api/internal/llm"
)

const stabilityEndpoint = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

// StabilityClient calls the Stability AI text-to-image REST API.
type StabilityClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

type stabilityRequest struct {
	TextPrompts []stabilityPrompt `json:"text_prompts"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Samples     int               `json:"samples"`
	CfgScale    float64           `json:"cfg_scale"`
}

type stabilityPrompt struct {
	Text string `json:"text"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64       string `json:"base64"`
		FinishReason string `json:"finishReason"`
	} `json:"artifacts"`
}

func NewStabilityClient(apiKey string) *StabilityClient {
	return &StabilityClient{
		apiKey:   apiKey,
		endpoint: stabilityEndpoint,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *StabilityClient) Name() string {
	return "stability"
}

func (c *StabilityClient) Generate(ctx context.Context, prompt string, opts Options) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &llm.ConfigError{Missing: "STABILITY_API_KEY"}
	}

	opts = opts.withDefaults()
	payload, err := json.Marshal(stabilityRequest{
		TextPrompts: []stabilityPrompt{{Text: prompt}},
		Width:       opts.Width,
		Height:      opts.Height,
		Samples:     opts.Samples,
		CfgScale:    opts.GuidanceScale,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.ProviderError{
			Provider:   c.Name(),
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var parsed stabilityResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "malformed response payload", Err: err}
	}
	if len(parsed.Artifacts) == 0 {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "response contains no artifacts"}
	}

	image, err := base64.StdEncoding.DecodeString(parsed.Artifacts[0].Base64)
	if err != nil {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "artifact is not valid base64", Err: err}
	}

	return image, nil
}
