package llm

import (
	"context"
	"errors"
	"testing"
)

func TestCompleteMissingKeyFailsBeforeNetwork(t *testing.T) {
	// An unroutable base URL proves the key check happens first: any
	// network attempt would fail with a transport error instead.
	client := NewMistralClient("", "mistral-small-latest", "http://127.0.0.1:1/v1")

	_, err := client.Complete(context.Background(), "system", "user")

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Missing != "MISTRAL_API_KEY" {
		t.Errorf("unexpected missing credential name: %q", cfgErr.Missing)
	}
}

func TestProviderErrorMessages(t *testing.T) {
	withStatus := &ProviderError{Provider: "mistral", StatusCode: 429, Message: "rate limited"}
	if withStatus.Error() != "mistral: status 429: rate limited" {
		t.Errorf("unexpected message: %q", withStatus.Error())
	}

	wrapped := &ProviderError{Provider: "mistral", Message: "request failed", Err: errors.New("dial tcp: refused")}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("ProviderError should unwrap to the underlying error")
	}
}
