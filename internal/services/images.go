package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/imagegen"
	"github.com/kwameadu/doc-studio-api/internal/llm"
	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type ImageService interface {
	// Generate produces one image for the prompt, using the first
	// provider with a configured credential.
	Generate(ctx context.Context, req *models.ImageRequest) ([]byte, string, error)
}

type imageService struct {
	clients []imagegen.ImageClient
	logger  *utils.Logger
}

// NewImageService takes clients in preference order.
func NewImageService(logger *utils.Logger, clients ...imagegen.ImageClient) ImageService {
	return &imageService{clients: clients, logger: logger}
}

func (s *imageService) Generate(ctx context.Context, req *models.ImageRequest) ([]byte, string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, "", utils.NewBadRequestError("Prompt is required")
	}

	opts := imagegen.Options{
		Width:         req.Width,
		Height:        req.Height,
		Samples:       req.Samples,
		GuidanceScale: req.GuidanceScale,
	}

	for _, client := range s.clients {
		image, err := client.Generate(ctx, req.Prompt, opts)
		if err == nil {
			s.logger.Info("Image generated", "provider", client.Name(), "bytes", len(image))
			return image, "image/png", nil
		}

		// An unconfigured provider yields to the next one; a real
		// provider failure surfaces immediately.
		var cfgErr *llm.ConfigError
		if errors.As(err, &cfgErr) {
			continue
		}

		s.logger.Error("Image generation failed", "provider", client.Name(), "error", err)
		return nil, "", mapDomainError(err)
	}

	return nil, "", &utils.AppError{StatusCode: 500, Message: "No image provider is configured"}
}
