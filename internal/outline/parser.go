package outline

import (
	"regexp"
	"strings"
)

var headerPattern = regexp.MustCompile(`(?i)^\s*(Slide|Section)\s+(\d+)\s*[:.]\s*(.+)$`)

// bulletPattern matches the assorted bullet markers models emit so they
// can be normalized to a single leading "- ".
var bulletPattern = regexp.MustCompile(`^\s*(?:[-*•–—]\s*)+`)

// Phrases that signal the model asking for confirmation instead of
// producing outline content; such lines are dropped.
var confirmationPhrases = []string{
	"shall i proceed",
	"let me know",
	"would you like",
	"do you want me to",
}

// Parse scans a model reply line by line. A line matching
// "<Keyword> <number>: <title>" starts a new item, flushing the previous
// one; other lines accumulate into the current item's body. A reply with
// no header lines yields no items.
func Parse(reply string, mode Mode) []Item {
	var items []Item
	var current *Item
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		items = append(items, *current)
		current = nil
		body = nil
	}

	for _, line := range strings.Split(reply, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil && strings.EqualFold(m[1], mode.Keyword()) {
			flush()
			current = &Item{Title: strings.TrimSpace(m[3])}
			continue
		}

		if current == nil {
			continue
		}

		cleaned := normalizeLine(line)
		if cleaned == "" {
			continue
		}
		body = append(body, cleaned)
	}
	flush()

	return items
}

func normalizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range confirmationPhrases {
		if strings.Contains(lower, phrase) {
			return ""
		}
	}

	if loc := bulletPattern.FindStringIndex(trimmed); loc != nil {
		rest := strings.TrimSpace(trimmed[loc[1]:])
		if rest == "" {
			return ""
		}
		return "- " + rest
	}

	return trimmed
}
