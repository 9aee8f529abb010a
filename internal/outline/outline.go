// Package outline turns a free-text description into a structured outline
// by prompting the completion provider and pattern-matching its
// semi-structured reply. Parsing is best effort: it depends entirely on
// the model following the requested format, and degrades to an empty
// outline rather than failing hard.
package outline

import (
	"fmt"
	"strings"
)

// Mode selects the header keyword the model is asked to emit and the
// parser expects back.
type Mode string

const (
	ModeSlides   Mode = "slides"
	ModeDocument Mode = "document"
)

// Keyword returns the item header keyword for the mode.
func (m Mode) Keyword() string {
	if m == ModeDocument {
		return "Section"
	}
	return "Slide"
}

// ParseMode maps a request string onto a Mode, defaulting to slides.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(ModeDocument)) {
		return ModeDocument
	}
	return ModeSlides
}

// Item is one titled entry of an outline with a free-text body.
type Item struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Outline is a title plus an ordered sequence of items, planned prior to
// rendering into a deck or document.
type Outline struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Format renders the outline back into the textual form the model was
// asked to produce, used when feeding a prior outline into a refinement
// prompt.
func (o Outline) Format(mode Mode) string {
	var b strings.Builder
	if o.Title != "" {
		b.WriteString("Title: " + o.Title + "\n\n")
	}
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%s %d: %s\n", mode.Keyword(), i+1, item.Title)
		if item.Body != "" {
			b.WriteString(item.Body + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
