package assembler

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kwameadu/doc-studio-api/internal/outline"
)

var testOutline = outline.Outline{
	Title: "Launch Plan",
	Items: []outline.Item{
		{Title: "Why now", Body: "- market timing\n- competitor moves"},
		{Title: "The plan & budget", Body: "- three phases"},
	},
}

func TestBuildPPTX(t *testing.T) {
	data, err := BuildPPTX(testOutline)
	if err != nil {
		t.Fatalf("BuildPPTX returned error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		content, _ := io.ReadAll(rc)
		rc.Close()
		parts[f.Name] = string(content)
	}

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}

	// Title slide plus one slide per item, no extras.
	slides := 0
	for name := range parts {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			slides++
		}
	}
	if slides != 3 {
		t.Errorf("got %d slides, want 3", slides)
	}

	if !strings.Contains(parts["ppt/slides/slide1.xml"], "Launch Plan") {
		t.Error("title slide missing outline title")
	}
	if !strings.Contains(parts["ppt/slides/slide2.xml"], "market timing") {
		t.Error("item slide missing bullet text")
	}
	// The ampersand in the item title must be escaped.
	if !strings.Contains(parts["ppt/slides/slide3.xml"], "The plan &amp; budget") {
		t.Error("XML special characters not escaped in slide title")
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := string(BuildMarkdown(testOutline))

	if !strings.HasPrefix(md, "# Launch Plan\n") {
		t.Errorf("missing title heading:\n%s", md)
	}
	if !strings.Contains(md, "## Why now") || !strings.Contains(md, "- market timing") {
		t.Errorf("missing section content:\n%s", md)
	}

	first := strings.Index(md, "## Why now")
	second := strings.Index(md, "## The plan & budget")
	if first < 0 || second < 0 || second < first {
		t.Error("sections out of order")
	}
}

func TestBuildHTMLDoc(t *testing.T) {
	doc, err := BuildHTMLDoc(testOutline)
	if err != nil {
		t.Fatalf("BuildHTMLDoc returned error: %v", err)
	}

	s := string(doc)
	if !strings.Contains(s, "<h1") || !strings.Contains(s, "Launch Plan") {
		t.Errorf("missing rendered title:\n%s", s)
	}
	if !strings.Contains(s, "<li>market timing</li>") {
		t.Errorf("bullets not rendered as list items:\n%s", s)
	}
	if !strings.Contains(s, "<!DOCTYPE html>") {
		t.Error("not a standalone HTML document")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := string(SummaryMarkdown("report.pdf", "Key findings here.\n"))

	if !strings.HasPrefix(md, "# Summary of report\n") {
		t.Errorf("unexpected heading:\n%s", md)
	}
	if !strings.Contains(md, "Key findings here.") {
		t.Error("summary body missing")
	}
}
