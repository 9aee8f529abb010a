// Package models defines the request and response shapes of the HTTP
// API.
package models

import "github.com/kwameadu/doc-studio-api/internal/outline"

type UploadResponse struct {
	SessionID      string `json:"session_id"`
	Filename       string `json:"filename"`
	Chars          int    `json:"chars"`
	Chunks         int    `json:"chunks"`
	Summary        string `json:"summary"`
	SuggestedTitle string `json:"suggested_title,omitempty"`
}

type OutlineRequest struct {
	SessionID   string `json:"session_id,omitempty"`
	Description string `json:"description"`
	ItemCount   int    `json:"item_count,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

type OutlineResponse struct {
	SessionID string          `json:"session_id"`
	Outline   outline.Outline `json:"outline"`
}

type RefineRequest struct {
	SessionID string           `json:"session_id,omitempty"`
	Outline   *outline.Outline `json:"outline,omitempty"`
	Feedback  string           `json:"feedback"`
	Mode      string           `json:"mode,omitempty"`
}

type GenerateFileRequest struct {
	SessionID string           `json:"session_id,omitempty"`
	Outline   *outline.Outline `json:"outline,omitempty"`
}

type SummaryFileRequest struct {
	SessionID string `json:"session_id"`
}

type FileStagedResponse struct {
	SessionID   string `json:"session_id"`
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	DownloadURL string `json:"download_url"`
}

type ChatRequest struct {
	SessionID    string `json:"session_id,omitempty"`
	Message      string `json:"message"`
	DocumentText string `json:"document_text,omitempty"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type ImageRequest struct {
	Prompt        string  `json:"prompt"`
	Width         int     `json:"width,omitempty"`
	Height        int     `json:"height,omitempty"`
	Samples       int     `json:"samples,omitempty"`
	GuidanceScale float64 `json:"guidance_scale,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
