package services

import (
	"context"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/outline"
	"github.com/kwameadu/doc-studio-api/internal/session"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

type OutlineService interface {
	Generate(ctx context.Context, req *models.OutlineRequest) (*models.OutlineResponse, error)
	Refine(ctx context.Context, req *models.RefineRequest) (*models.OutlineResponse, error)
}

type outlineService struct {
	generator *outline.Generator
	sessions  session.Store
	logger    *utils.Logger
}

func NewOutlineService(g *outline.Generator, sessions session.Store, logger *utils.Logger) OutlineService {
	return &outlineService{
		generator: g,
		sessions:  sessions,
		logger:    logger,
	}
}

func (s *outlineService) Generate(ctx context.Context, req *models.OutlineRequest) (*models.OutlineResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, utils.NewBadRequestError("Description is required")
	}

	mode := outline.ParseMode(req.Mode)
	o, err := s.generator.Generate(ctx, req.Description, req.ItemCount, mode)
	if err != nil {
		s.logger.Error("Outline generation failed", "error", err)
		return nil, mapDomainError(err)
	}
	if len(o.Items) == 0 {
		s.logger.Warn("Outline reply had no usable structure", "mode", mode)
	}

	sess, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	if err := s.sessions.SaveOutline(ctx, sess.ID, o); err != nil {
		s.logger.Error("Failed to cache outline", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	s.logger.Info("Outline generated", "session_id", sess.ID, "items", len(o.Items), "mode", mode)

	return &models.OutlineResponse{SessionID: sess.ID, Outline: o}, nil
}

func (s *outlineService) Refine(ctx context.Context, req *models.RefineRequest) (*models.OutlineResponse, error) {
	if strings.TrimSpace(req.Feedback) == "" {
		return nil, utils.NewBadRequestError("Feedback is required")
	}

	sess, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	prior, err := s.resolvePrior(ctx, req, sess.ID)
	if err != nil {
		return nil, err
	}

	mode := outline.ParseMode(req.Mode)
	o, err := s.generator.Refine(ctx, prior, req.Feedback, mode)
	if err != nil {
		s.logger.Error("Outline refinement failed", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	if err := s.sessions.SaveOutline(ctx, sess.ID, o); err != nil {
		return nil, mapDomainError(err)
	}

	s.logger.Info("Outline refined", "session_id", sess.ID, "items", len(o.Items))

	return &models.OutlineResponse{SessionID: sess.ID, Outline: o}, nil
}

// resolvePrior prefers an outline supplied in the request, falling back
// to the session's cached one.
func (s *outlineService) resolvePrior(ctx context.Context, req *models.RefineRequest, sessionID string) (outline.Outline, error) {
	if req.Outline != nil {
		return *req.Outline, nil
	}

	cached, ok, err := s.sessions.Outline(ctx, sessionID)
	if err != nil {
		return outline.Outline{}, mapDomainError(err)
	}
	if !ok {
		return outline.Outline{}, utils.NewBadRequestError("No prior outline to refine; generate one first")
	}
	return cached, nil
}
