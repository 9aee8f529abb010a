package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kwameadu/doc-studio-api/internal/llm"
)

const segmindEndpoint = "https://api.segmind.com/v1/sdxl1.0-txt2img"

// SegmindClient calls the Segmind text-to-image REST API, which returns
// the image bytes directly.
type SegmindClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

type segmindRequest struct {
	Prompt        string  `json:"prompt"`
	ImgWidth      int     `json:"img_width"`
	ImgHeight     int     `json:"img_height"`
	Samples       int     `json:"samples"`
	GuidanceScale float64 `json:"guidance_scale"`
	Base64        bool    `json:"base64"`
}

func NewSegmindClient(apiKey string) *SegmindClient {
	return &SegmindClient{
		apiKey:   apiKey,
		endpoint: segmindEndpoint,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *SegmindClient) Name() string {
	return "segmind"
}

func (c *SegmindClient) Generate(ctx context.Context, prompt string, opts Options) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &llm.ConfigError{Missing: "SEGMIND_API_KEY"}
	}

	opts = opts.withDefaults()
	payload, err := json.Marshal(segmindRequest{
		Prompt:        prompt,
		ImgWidth:      opts.Width,
		ImgHeight:     opts.Height,
		Samples:       opts.Samples,
		GuidanceScale: opts.GuidanceScale,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

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

	if len(body) == 0 {
		return nil, &llm.ProviderError{Provider: c.Name(), Message: "empty image payload"}
	}

	return body, nil
}
