package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kwameadu/doc-studio-api/internal/llm"
)

// fakeCompleter records every call and answers from a canned function.
type fakeCompleter struct {
	calls []call
	reply func(system, user string) (string, error)
}

type call struct {
	system string
	user   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls = append(f.calls, call{system: system, user: user})
	if f.reply != nil {
		return f.reply(system, user)
	}
	return "ok", nil
}

func TestSummarizeSingleChunkOneCall(t *testing.T) {
	fake := &fakeCompleter{reply: func(_, _ string) (string, error) {
		return "the summary", nil
	}}
	s := NewWithChunking(fake, 100, 10)

	got, err := s.Summarize(context.Background(), "short document")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got != "the summary" {
		t.Errorf("got %q", got)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("got %d completion calls, want 1", len(fake.calls))
	}
	if fake.calls[0].user != "short document" {
		t.Errorf("single-chunk call should receive the whole text, got %q", fake.calls[0].user)
	}
}

func TestSummarizeMapReduceCallCount(t *testing.T) {
	fake := &fakeCompleter{}
	s := NewWithChunking(fake, 10, 3)

	text := strings.Repeat("a", 45)
	wantChunks := s.ChunkCount(text)
	if wantChunks < 2 {
		t.Fatalf("fixture should produce multiple chunks, got %d", wantChunks)
	}

	if _, err := s.Summarize(context.Background(), text); err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if got := len(fake.calls); got != wantChunks+1 {
		t.Errorf("got %d completion calls, want chunks+1 = %d", got, wantChunks+1)
	}
}

func TestSummarizeMergePreservesChunkOrder(t *testing.T) {
	var served int
	fake := &fakeCompleter{reply: func(system, _ string) (string, error) {
		if system == mergeInstruction {
			return "merged", nil
		}
		served++
		return fmt.Sprintf("partial-%d", served), nil
	}}
	s := NewWithChunking(fake, 10, 3)

	if _, err := s.Summarize(context.Background(), strings.Repeat("b", 30)); err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	mergeInput := fake.calls[len(fake.calls)-1]
	if mergeInput.system != mergeInstruction {
		t.Fatal("final call is not the merge call")
	}

	// Labelled partial summaries must appear in original chunk order.
	lastPos := -1
	for i := 1; i <= served; i++ {
		label := fmt.Sprintf("Chunk %d Summary:\npartial-%d", i, i)
		pos := strings.Index(mergeInput.user, label)
		if pos < 0 {
			t.Fatalf("merge input missing %q:\n%s", label, mergeInput.user)
		}
		if pos <= lastPos {
			t.Errorf("chunk %d summary appears out of order", i)
		}
		lastPos = pos
	}
}

func TestSummarizeAbortsOnChunkError(t *testing.T) {
	providerErr := &llm.ProviderError{Provider: "mistral", StatusCode: 500, Message: "boom"}
	fake := &fakeCompleter{reply: func(_, _ string) (string, error) {
		return "", providerErr
	}}
	s := NewWithChunking(fake, 10, 3)

	_, err := s.Summarize(context.Background(), strings.Repeat("c", 30))
	if err == nil {
		t.Fatal("expected error")
	}

	var pErr *llm.ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("underlying provider error not preserved: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("expected the first failed call to abort the run, got %d calls", len(fake.calls))
	}
}

func TestSuggestTitleTrimsQuotes(t *testing.T) {
	fake := &fakeCompleter{reply: func(_, _ string) (string, error) {
		return "\"Quarterly Review\"\n", nil
	}}
	s := New(fake)

	title, err := s.SuggestTitle(context.Background(), "the document body")
	if err != nil {
		t.Fatalf("SuggestTitle returned error: %v", err)
	}
	if title != "Quarterly Review" {
		t.Errorf("got %q", title)
	}
}
