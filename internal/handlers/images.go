package handlers

import (
	"net/http"
	"strconv"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type ImageHandler struct {
	service services.ImageService
	logger  *utils.Logger
}

func NewImageHandler(service services.ImageService, logger *utils.Logger) *ImageHandler {
	return &ImageHandler{service: service, logger: logger}
}

// Generate returns the raw image bytes rather than JSON so clients can
// display or save the result directly.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.ImageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	data, contentType, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("Failed to write image response", "error", err)
	}
}
