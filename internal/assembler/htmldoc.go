package assembler

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/kwameadu/doc-studio-api/internal/outline"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, serif; max-width: 46rem; margin: 2rem auto; line-height: 1.6; padding: 0 1rem; }
h1 { border-bottom: 2px solid #ddd; padding-bottom: .3rem; }
h2 { margin-top: 2rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// BuildHTMLDoc renders the outline to markdown and converts it into a
// standalone HTML document.
func BuildHTMLDoc(o outline.Outline) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert(BuildMarkdown(o), &body); err != nil {
		return nil, fmt.Errorf("failed to render outline markdown: %w", err)
	}

	doc := fmt.Sprintf(htmlShell, html.EscapeString(o.Title), body.String())
	return []byte(doc), nil
}
