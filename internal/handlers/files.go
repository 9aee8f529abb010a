package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type FileHandler struct {
	service services.FileService
	logger  *utils.Logger
}

func NewFileHandler(service services.FileService, logger *utils.Logger) *FileHandler {
	return &FileHandler{service: service, logger: logger}
}

func (h *FileHandler) GenerateSlides(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.GenerateSlides(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *FileHandler) GenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.GenerateDocument(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *FileHandler) SummaryFile(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryFileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.SummaryFile(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}

// Download serves a staged file once. The staged copy is discarded after
// a successful response so abandoned files do not accumulate.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	artifact, data, err := h.service.Fetch(r.Context(), key)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("Failed to write download response", "key", key, "error", err)
		return
	}

	h.service.Discard(r.Context(), key)
}
