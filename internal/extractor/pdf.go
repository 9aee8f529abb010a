package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDF pulls plain text page by page, in page order, joined with
// newlines. Pages that fail to decode are skipped rather than failing
// the whole document.
func ExtractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		b.WriteString(text)
		b.WriteString("\n")
	}

	extracted := strings.TrimSpace(b.String())
	if extracted == "" {
		return "", fmt.Errorf("no text could be extracted from PDF")
	}

	return extracted, nil
}
