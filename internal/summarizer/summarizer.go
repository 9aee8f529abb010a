// Package summarizer produces one exhaustive summary of arbitrarily long
// text by summarizing overlapping chunks independently and merging the
// partial summaries (map-reduce, single reduce pass).
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/chunker"
	"github.com/kwameadu/doc-studio-api/internal/llm"
)

const summaryInstruction = "Provide a comprehensive and detailed summary of the given content. " +
	"Ensure that no important point, topic, or detail is omitted. " +
	"Cover every aspect thoroughly, maintaining accuracy and completeness. " +
	"The summary should be as extensive as possible, preserving the depth " +
	"and context of the original material rather than condensing it too much."

const chunkInstruction = "You are given a chunk from a longer document.\n" +
	"Write a meticulous, exhaustive summary of this chunk. Retain all important " +
	"points, facts, numbers, definitions, lists, examples, equations, and names. " +
	"Avoid generalities; do not omit details."

const mergeInstruction = summaryInstruction +
	"\n\nYou are given multiple detailed chunk summaries of the same document. " +
	"Merge them into a single unified summary that:\n" +
	"- Preserves every important detail from the chunk summaries\n" +
	"- Resolves overlaps and contradictions carefully\n" +
	"- Organizes content logically with clear sections and bullet points where helpful\n" +
	"- Maintains accuracy, specificity, and completeness throughout"

const titleInstruction = "Suggest a short, descriptive title for the given document. " +
	"Respond with the title only, no quotes and no extra commentary."

type Summarizer struct {
	completer llm.Completer
	chunkSize int
	overlap   int
}

func New(completer llm.Completer) *Summarizer {
	return &Summarizer{
		completer: completer,
		chunkSize: chunker.DefaultSize,
		overlap:   chunker.DefaultOverlap,
	}
}

// NewWithChunking overrides the process-wide chunk parameters, mainly for
// tests.
func NewWithChunking(completer llm.Completer, chunkSize, overlap int) *Summarizer {
	return &Summarizer{
		completer: completer,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// ChunkCount reports how many chunks Summarize would process for text.
func (s *Summarizer) ChunkCount(text string) int {
	return chunker.Count(text, s.chunkSize, s.overlap)
}

// Summarize returns one exhaustive summary of text. A single chunk is
// summarized with one completion call; otherwise each chunk is summarized
// in order and a final call merges the labelled partial summaries, for a
// total of chunks+1 round trips. Any failed call aborts the whole
// operation with no partial result.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	chunks := chunker.Split(text, s.chunkSize, s.overlap)
	if len(chunks) <= 1 {
		summary, err := s.completer.Complete(ctx, summaryInstruction, text)
		if err != nil {
			return "", fmt.Errorf("summarize text: %w", err)
		}
		return summary, nil
	}

	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		mapped, err := s.completer.Complete(ctx, chunkInstruction, chunk.Text)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d of %d: %w", chunk.Index+1, len(chunks), err)
		}
		partials = append(partials, fmt.Sprintf("Chunk %d Summary:\n%s", chunk.Index+1, mapped))
	}

	combined := strings.Join(partials, "\n\n")

	merged, err := s.completer.Complete(ctx, mergeInstruction, combined)
	if err != nil {
		return "", fmt.Errorf("merge chunk summaries: %w", err)
	}

	return merged, nil
}

// SuggestTitle proposes a short title for the document with one
// completion call over a bounded prefix of the text.
func (s *Summarizer) SuggestTitle(ctx context.Context, text string) (string, error) {
	// The opening of a document is enough to name it.
	sample := text
	if len(sample) > s.chunkSize {
		sample = sample[:s.chunkSize]
	}

	title, err := s.completer.Complete(ctx, titleInstruction, sample)
	if err != nil {
		return "", fmt.Errorf("suggest title: %w", err)
	}

	return strings.Trim(strings.TrimSpace(title), `"`), nil
}
