package assembler

import (
	"fmt"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/outline"
)

// BuildMarkdown renders the outline as a markdown document: the title as
// a top-level heading, each item as a section.
func BuildMarkdown(o outline.Outline) []byte {
	var b strings.Builder

	if o.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", o.Title)
	}
	for _, item := range o.Items {
		fmt.Fprintf(&b, "## %s\n\n", item.Title)
		if item.Body != "" {
			b.WriteString(item.Body)
			b.WriteString("\n\n")
		}
	}

	return []byte(strings.TrimSpace(b.String()) + "\n")
}

// SummaryMarkdown wraps a generated summary in a small markdown file for
// download, titled after the source document.
func SummaryMarkdown(filename, summary string) []byte {
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary of %s\n\n", base)
	b.WriteString(strings.TrimSpace(summary))
	b.WriteString("\n")

	return []byte(b.String())
}
