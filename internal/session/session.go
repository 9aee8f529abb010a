// Package session keeps per-session interactive state: chat history,
// the cached summary and outline, and records of generated files. Each
// session is owned by one UI conversation; nothing is shared across
// sessions.
package session

import "time"

type Session struct {
	ID             string    `json:"id" db:"id"`
	SourceFilename string    `json:"source_filename,omitempty" db:"source_filename"`
	Summary        string    `json:"summary,omitempty" db:"summary"`
	OutlineJSON    string    `json:"-" db:"outline_json"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type Message struct {
	ID        int64     `json:"-" db:"id"`
	SessionID string    `json:"-" db:"session_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Artifact records one generated file staged for download.
type Artifact struct {
	Key         string    `json:"key" db:"key"`
	SessionID   string    `json:"-" db:"session_id"`
	Filename    string    `json:"filename" db:"filename"`
	ContentType string    `json:"content_type" db:"content_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Roles recorded in chat history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
