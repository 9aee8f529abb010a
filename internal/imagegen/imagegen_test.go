package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kwameadu/doc-studio-api/internal/llm"
)

func TestMissingKeyFailsBeforeNetwork(t *testing.T) {
	clients := []ImageClient{
		NewStabilityClient(""),
		NewSegmindClient(""),
	}

	for _, c := range clients {
		_, err := c.Generate(context.Background(), "a lighthouse", Options{})

		var cfgErr *llm.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", c.Name(), err)
		}
	}
}

func TestStabilityGenerate(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req stabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Width != 1024 || req.Height != 1024 || req.Samples != 1 || req.CfgScale != 7 {
			t.Errorf("defaults not applied: %+v", req)
		}
		json.NewEncoder(w).Encode(stabilityResponse{
			Artifacts: []struct {
				Base64       string `json:"base64"`
				FinishReason string `json:"finishReason"`
			}{{Base64: base64.StdEncoding.EncodeToString(image)}},
		})
	}))
	defer srv.Close()

	c := NewStabilityClient("key")
	c.endpoint = srv.URL

	got, err := c.Generate(context.Background(), "a lighthouse", Options{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if string(got) != string(image) {
		t.Errorf("image bytes mismatch")
	}
}

func TestStabilityNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid prompt", http.StatusTeapot)
	}))
	defer srv.Close()

	c := NewStabilityClient("key")
	c.endpoint = srv.URL

	_, err := c.Generate(context.Background(), "x", Options{})

	var pErr *llm.ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pErr.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d", pErr.StatusCode)
	}
}

func TestSegmindGenerateReturnsRawBytes(t *testing.T) {
	image := []byte("raw-image-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "key" {
			t.Errorf("missing api key header")
		}
		w.Write(image)
	}))
	defer srv.Close()

	c := NewSegmindClient("key")
	c.endpoint = srv.URL

	got, err := c.Generate(context.Background(), "a lighthouse", Options{Width: 512, Height: 512})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if string(got) != string(image) {
		t.Errorf("image bytes mismatch")
	}
}
