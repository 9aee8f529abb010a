package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/services"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

type DocumentHandler struct {
	service     services.DocumentService
	logger      *utils.Logger
	maxFileSize int64
}

func NewDocumentHandler(service services.DocumentService, logger *utils.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Upload accepts a multipart document, extracts its text, and responds
// with character count, chunk count, the summary, and a suggested title.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxFileSize {
		respondError(w, h.logger, utils.NewBadRequestError("File exceeds the upload size limit"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			respondError(w, h.logger, utils.NewBadRequestError("File exceeds the upload size limit"))
			return
		}
		respondError(w, h.logger, utils.NewBadRequestError("Invalid form data"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !supportedExtensions[ext] {
		respondError(w, h.logger, utils.NewBadRequestError("Only PDF, DOCX, and TXT files are supported"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		respondError(w, h.logger, utils.NewInternalError("Failed to read uploaded file"))
		return
	}
	if int64(len(data)) > h.maxFileSize {
		respondError(w, h.logger, utils.NewBadRequestError("File exceeds the upload size limit"))
		return
	}
	if len(data) == 0 {
		respondError(w, h.logger, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	h.logger.Info("Document upload", "filename", header.Filename, "bytes", len(data))

	resp, err := h.service.Upload(r.Context(), data, header.Filename, r.FormValue("session_id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, resp)
}
