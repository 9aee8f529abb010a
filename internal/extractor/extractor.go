package extractor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExtractionError reports unreadable, empty, or unsupported document
// content. The HTTP layer renders it as an upload rejection.
type ExtractionError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Filename, e.Reason, e.Err)
	}
	return fmt.Sprintf("extract %s: %s", e.Filename, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extract produces best-effort plain text from an uploaded document,
// dispatching on the declared filename's extension. The input is never
// retained or mutated.
func Extract(data []byte, filename string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = ExtractPDF(data)
	case ".docx":
		text, err = ExtractDOCX(data)
	case ".txt":
		text, err = ExtractTXT(data)
	default:
		return "", &ExtractionError{Filename: filename, Reason: "unsupported file type"}
	}

	if err != nil {
		return "", &ExtractionError{Filename: filename, Reason: "unreadable content", Err: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Filename: filename, Reason: "no text content"}
	}

	return text, nil
}
