// Package llm wraps the single request/response round trip to the text
// completion provider.
package llm

import (
	"context"
	"fmt"
)

// Completer issues one blocking completion call. Implementations do not
// retry; a failed call surfaces immediately to the caller.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ConfigError reports a missing credential. It is returned before any
// network attempt is made.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Missing)
}

// ProviderError reports an unreachable provider, a non-success status,
// or a response missing the expected content.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
