package utils

import "github.com/google/uuid"

// GenerateID returns a random identifier for request-scoped entities
// (sessions, staged files).
func GenerateID() string {
	return uuid.NewString()
}
