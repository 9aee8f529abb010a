package handlers

import (
	"net/http"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type OutlineHandler struct {
	service services.OutlineService
	logger  *utils.Logger
}

func NewOutlineHandler(service services.OutlineService, logger *utils.Logger) *OutlineHandler {
	return &OutlineHandler{service: service, logger: logger}
}

func (h *OutlineHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.OutlineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}

func (h *OutlineHandler) Refine(w http.ResponseWriter, r *http.Request) {
	var req models.RefineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.Refine(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}
