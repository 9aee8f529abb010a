package handlers

import (
	"net/http"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type ChatHandler struct {
	service services.ChatService
	logger  *utils.Logger
}

func NewChatHandler(service services.ChatService, logger *utils.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp, err := h.service.Send(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}
