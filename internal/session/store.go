package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kwameadu/doc-studio-api/internal/outline"
	"github.com/kwameadu/doc-studio-api/internal/utils"
)

// Store persists per-session state between interactive requests.
type Store interface {
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	AppendMessage(ctx context.Context, sessionID, role, content string) error
	History(ctx context.Context, sessionID string) ([]Message, error)
	SaveSummary(ctx context.Context, sessionID, filename, summary string) error
	SaveOutline(ctx context.Context, sessionID string, o outline.Outline) error
	Outline(ctx context.Context, sessionID string) (outline.Outline, bool, error)
	RecordArtifact(ctx context.Context, a *Artifact) error
	Artifact(ctx context.Context, key string) (*Artifact, error)
	Delete(ctx context.Context, sessionID string) error
}

type store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) Store {
	return &store{db: db}
}

// GetOrCreate loads the session with the given id, creating a fresh one
// when id is empty or unknown.
func (s *store) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if id != "" {
		var sess Session
		err := s.db.GetContext(ctx, &sess,
			`SELECT id, source_filename, summary, outline_json, created_at, updated_at
			 FROM sessions WHERE id = ?`, id)
		if err == nil {
			return &sess, nil
		}
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("load session: %w", err)
		}
	}

	now := time.Now().UTC()
	sess := &Session{
		ID:        utils.GenerateID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, source_filename, summary, outline_json, created_at, updated_at)
		 VALUES (?, '', '', '', ?, ?)`,
		sess.ID, sess.CreatedAt, sess.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return sess, nil
}

func (s *store) AppendMessage(ctx context.Context, sessionID, role, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, role, content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return s.touch(ctx, sessionID)
}

// History returns the session's chat messages in insertion order.
func (s *store) History(ctx context.Context, sessionID string) ([]Message, error) {
	var messages []Message
	err := s.db.SelectContext(ctx, &messages,
		`SELECT id, session_id, role, content, created_at
		 FROM messages WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return messages, nil
}

func (s *store) SaveSummary(ctx context.Context, sessionID, filename, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET source_filename = ?, summary = ?, updated_at = ? WHERE id = ?`,
		filename, summary, time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

func (s *store) SaveOutline(ctx context.Context, sessionID string, o outline.Outline) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode outline: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE sessions SET outline_json = ?, updated_at = ? WHERE id = ?`,
		string(raw), time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("save outline: %w", err)
	}
	return nil
}

// Outline returns the cached outline and whether one exists.
func (s *store) Outline(ctx context.Context, sessionID string) (outline.Outline, bool, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw,
		`SELECT outline_json FROM sessions WHERE id = ?`, sessionID)
	if err == sql.ErrNoRows {
		return outline.Outline{}, false, nil
	}
	if err != nil {
		return outline.Outline{}, false, fmt.Errorf("load outline: %w", err)
	}
	if raw == "" {
		return outline.Outline{}, false, nil
	}

	var o outline.Outline
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return outline.Outline{}, false, fmt.Errorf("decode outline: %w", err)
	}
	return o, true, nil
}

func (s *store) RecordArtifact(ctx context.Context, a *Artifact) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (key, session_id, filename, content_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.Key, a.SessionID, a.Filename, a.ContentType, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("record artifact: %w", err)
	}
	return nil
}

func (s *store) Artifact(ctx context.Context, key string) (*Artifact, error) {
	var a Artifact
	err := s.db.GetContext(ctx, &a,
		`SELECT key, session_id, filename, content_type, created_at
		 FROM artifacts WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load artifact: %w", err)
	}
	return &a, nil
}

// Delete removes the session and, via cascading foreign keys, its
// messages and artifact records.
func (s *store) Delete(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *store) touch(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now().UTC(), sessionID)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}
