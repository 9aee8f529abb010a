package services

import (
	"context"

	"github.com/kwameadu/doc-studio-api/internal/extractor"
	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/session"
	"github.com/kwameadu/doc-studio-api/internal/summarizer"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type DocumentService interface {
	// Upload extracts text from an uploaded document, summarizes it, and
	// caches the summary in the session for subsequent interactions.
	Upload(ctx context.Context, data []byte, filename, sessionID string) (*models.UploadResponse, error)
}

type documentService struct {
	summarizer *summarizer.Summarizer
	sessions   session.Store
	logger     *utils.Logger
}

func NewDocumentService(s *summarizer.Summarizer, sessions session.Store, logger *utils.Logger) DocumentService {
	return &documentService{
		summarizer: s,
		sessions:   sessions,
		logger:     logger,
	}
}

func (d *documentService) Upload(ctx context.Context, data []byte, filename, sessionID string) (*models.UploadResponse, error) {
	text, err := extractor.Extract(data, filename)
	if err != nil {
		d.logger.Warn("Text extraction failed", "filename", filename, "error", err)
		return nil, mapDomainError(err)
	}

	chunks := d.summarizer.ChunkCount(text)
	d.logger.Info("Document extracted", "filename", filename, "chars", len(text), "chunks", chunks)

	summary, err := d.summarizer.Summarize(ctx, text)
	if err != nil {
		d.logger.Error("Summarization failed", "filename", filename, "error", err)
		return nil, mapDomainError(err)
	}

	// A failed title suggestion degrades the response, not the upload.
	title, err := d.summarizer.SuggestTitle(ctx, text)
	if err != nil {
		d.logger.Warn("Title suggestion failed", "filename", filename, "error", err)
		title = ""
	}

	sess, err := d.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		d.logger.Error("Session lookup failed", "error", err)
		return nil, mapDomainError(err)
	}
	if err := d.sessions.SaveSummary(ctx, sess.ID, filename, summary); err != nil {
		d.logger.Error("Failed to cache summary", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	d.logger.Info("Document summarized",
		"session_id", sess.ID,
		"filename", filename,
		"chunks", chunks,
		"summary_length", len(summary))

	return &models.UploadResponse{
		SessionID:      sess.ID,
		Filename:       filename,
		Chars:          len(text),
		Chunks:         chunks,
		Summary:        summary,
		SuggestedTitle: title,
	}, nil
}
