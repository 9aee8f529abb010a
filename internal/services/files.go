package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/kwameadu/doc-studio-api/internal/assembler"
	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/outline"
	"github.com/kwameadu/doc-studio-api/internal/session"
	"github.com/kwameadu/doc-studio-api/internal/storage"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

const (
	pptxContentType     = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	htmlContentType     = "text/html; charset=utf-8"
	markdownContentType = "text/markdown; charset=utf-8"
)

type FileService interface {
	// GenerateSlides renders the outline into a PPTX deck and stages it
	// for download.
	GenerateSlides(ctx context.Context, req *models.GenerateFileRequest) (*models.FileStagedResponse, error)
	// GenerateDocument renders the outline into a standalone HTML file.
	GenerateDocument(ctx context.Context, req *models.GenerateFileRequest) (*models.FileStagedResponse, error)
	// SummaryFile stages the session's cached summary as a markdown file.
	SummaryFile(ctx context.Context, req *models.SummaryFileRequest) (*models.FileStagedResponse, error)
	// Fetch returns a staged file and its metadata.
	Fetch(ctx context.Context, key string) (*session.Artifact, []byte, error)
	// Discard removes a staged file, best effort.
	Discard(ctx context.Context, key string)
}

type fileService struct {
	sessions session.Store
	staging  storage.Storage
	logger   *utils.Logger
}

func NewFileService(sessions session.Store, staging storage.Storage, logger *utils.Logger) FileService {
	return &fileService{
		sessions: sessions,
		staging:  staging,
		logger:   logger,
	}
}

func (f *fileService) GenerateSlides(ctx context.Context, req *models.GenerateFileRequest) (*models.FileStagedResponse, error) {
	sess, o, err := f.resolveOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := assembler.BuildPPTX(o)
	if err != nil {
		f.logger.Error("PPTX assembly failed", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	return f.stage(ctx, sess.ID, slugify(o.Title)+".pptx", pptxContentType, data)
}

func (f *fileService) GenerateDocument(ctx context.Context, req *models.GenerateFileRequest) (*models.FileStagedResponse, error) {
	sess, o, err := f.resolveOutline(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := assembler.BuildHTMLDoc(o)
	if err != nil {
		f.logger.Error("HTML assembly failed", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	return f.stage(ctx, sess.ID, slugify(o.Title)+".html", htmlContentType, data)
}

func (f *fileService) SummaryFile(ctx context.Context, req *models.SummaryFileRequest) (*models.FileStagedResponse, error) {
	if req.SessionID == "" {
		return nil, utils.NewBadRequestError("Session ID is required")
	}

	sess, err := f.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if sess.Summary == "" {
		return nil, utils.NewBadRequestError("No summary cached for this session; upload a document first")
	}

	data := assembler.SummaryMarkdown(sess.SourceFilename, sess.Summary)

	base := sess.SourceFilename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	name := slugify(base) + "_summary.md"

	return f.stage(ctx, sess.ID, name, markdownContentType, data)
}

func (f *fileService) Fetch(ctx context.Context, key string) (*session.Artifact, []byte, error) {
	artifact, err := f.sessions.Artifact(ctx, key)
	if err != nil {
		return nil, nil, mapDomainError(err)
	}
	if artifact == nil {
		return nil, nil, utils.NewNotFoundError("File not found or already downloaded")
	}

	data, err := f.staging.Download(ctx, key)
	if err != nil {
		f.logger.Error("Failed to read staged file", "key", key, "error", err)
		return nil, nil, utils.NewNotFoundError("File not found or already downloaded")
	}

	return artifact, data, nil
}

func (f *fileService) Discard(ctx context.Context, key string) {
	if err := f.staging.Delete(ctx, key); err != nil {
		f.logger.Warn("Failed to delete staged file", "key", key, "error", err)
	}
}

func (f *fileService) resolveOutline(ctx context.Context, req *models.GenerateFileRequest) (*session.Session, outline.Outline, error) {
	sess, err := f.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, outline.Outline{}, mapDomainError(err)
	}

	if req.Outline != nil {
		// A confirmed outline in the request supersedes and replaces the
		// cached one.
		if err := f.sessions.SaveOutline(ctx, sess.ID, *req.Outline); err != nil {
			return nil, outline.Outline{}, mapDomainError(err)
		}
		return sess, *req.Outline, nil
	}

	cached, ok, err := f.sessions.Outline(ctx, sess.ID)
	if err != nil {
		return nil, outline.Outline{}, mapDomainError(err)
	}
	if !ok {
		return nil, outline.Outline{}, utils.NewBadRequestError("No outline available; generate one first")
	}
	return sess, cached, nil
}

func (f *fileService) stage(ctx context.Context, sessionID, filename, contentType string, data []byte) (*models.FileStagedResponse, error) {
	key := utils.GenerateID()

	if err := f.staging.Upload(ctx, key, data, contentType); err != nil {
		f.logger.Error("Failed to stage file", "session_id", sessionID, "error", err)
		return nil, mapDomainError(err)
	}

	artifact := &session.Artifact{
		Key:         key,
		SessionID:   sessionID,
		Filename:    filename,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := f.sessions.RecordArtifact(ctx, artifact); err != nil {
		f.Discard(ctx, key)
		return nil, mapDomainError(err)
	}

	f.logger.Info("File staged", "session_id", sessionID, "key", key, "filename", filename, "bytes", len(data))

	return &models.FileStagedResponse{
		SessionID:   sessionID,
		Key:         key,
		Filename:    filename,
		ContentType: contentType,
		DownloadURL: "/api/v1/files/" + key,
	}, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "document"
	}
	return slug
}
