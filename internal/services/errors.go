package services

import (
	"errors"

	"github.com/kwameadu/doc-studio-api/internal/extractor"
	"github.com/kwameadu/doc-studio-api/internal/llm"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

// mapDomainError translates domain errors into the AppError the HTTP
// boundary renders. The original cause is kept for logging; it is never
// swallowed.
func mapDomainError(err error) *utils.AppError {
	var cfgErr *llm.ConfigError
	if errors.As(err, &cfgErr) {
		return &utils.AppError{StatusCode: 500, Message: cfgErr.Error(), Err: err}
	}

	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		return utils.NewBadGatewayError("Provider request failed: "+provErr.Provider, err)
	}

	var extErr *extractor.ExtractionError
	if errors.As(err, &extErr) {
		return utils.NewBadRequestError("Unsupported, empty, or unreadable file content")
	}

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &utils.AppError{StatusCode: 500, Message: "Internal server error", Err: err}
}
