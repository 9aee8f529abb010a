package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/llm"
	"github.com/kwameadu/doc-studio-api/internal/models"
	"github.com/kwameadu/doc-studio-api/internal/session"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

const chatInstruction = "You are a helpful assistant answering questions about documents " +
	"and content the user is working on. Be concise and accurate."

type ChatService interface {
	// Send generates a reply for a chat message, with the session's
	// history and an optional document context folded into the prompt.
	Send(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
}

type chatService struct {
	completer llm.Completer
	sessions  session.Store
	logger    *utils.Logger
}

func NewChatService(completer llm.Completer, sessions session.Store, logger *utils.Logger) ChatService {
	return &chatService{
		completer: completer,
		sessions:  sessions,
		logger:    logger,
	}
}

func (c *chatService) Send(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.NewBadRequestError("Message is required")
	}

	sess, err := c.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	history, err := c.sessions.History(ctx, sess.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	system := chatInstruction
	if req.DocumentText != "" {
		system += "\n\nUse the following document content as context:\n\n" + req.DocumentText
	} else if sess.Summary != "" {
		system += "\n\nThe user previously uploaded a document. Its summary:\n\n" + sess.Summary
	}

	reply, err := c.completer.Complete(ctx, system, buildTranscript(history, req.Message))
	if err != nil {
		c.logger.Error("Chat completion failed", "session_id", sess.ID, "error", err)
		return nil, mapDomainError(err)
	}

	if err := c.sessions.AppendMessage(ctx, sess.ID, session.RoleUser, req.Message); err != nil {
		return nil, mapDomainError(err)
	}
	if err := c.sessions.AppendMessage(ctx, sess.ID, session.RoleAssistant, reply); err != nil {
		return nil, mapDomainError(err)
	}

	c.logger.Info("Chat reply generated", "session_id", sess.ID, "history_turns", len(history))

	return &models.ChatResponse{SessionID: sess.ID, Reply: reply}, nil
}

// buildTranscript folds prior turns into the user text so the single
// system+user completion contract still carries the conversation.
func buildTranscript(history []session.Message, message string) string {
	if len(history) == 0 {
		return message
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	b.WriteString("\nuser: " + message)
	return b.String()
}
