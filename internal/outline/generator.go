package outline

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwameadu/doc-studio-api/internal/llm"
)

const plannerInstruction = "You are an expert content planner. " +
	"Follow the requested output format exactly. Do not add commentary, " +
	"preambles, or questions; output only the outline."

const titleInstruction = "Suggest a short, punchy title for the described content. " +
	"Respond with the title only, no quotes and no extra commentary."

// Generator prompts the completion provider for structured outlines and
// parses the replies.
type Generator struct {
	completer llm.Completer
}

func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{completer: completer}
}

// Generate builds an outline with count items from a free-text
// description. The title comes from a separate completion call, so an
// unparseable structure reply still yields a titled, empty outline.
func (g *Generator) Generate(ctx context.Context, description string, count int, mode Mode) (Outline, error) {
	if count <= 0 {
		count = 5
	}

	title, err := g.completer.Complete(ctx, titleInstruction, description)
	if err != nil {
		return Outline{}, fmt.Errorf("generate outline title: %w", err)
	}

	reply, err := g.completer.Complete(ctx, plannerInstruction, buildPrompt(description, count, mode))
	if err != nil {
		return Outline{}, fmt.Errorf("generate outline structure: %w", err)
	}

	return Outline{
		Title: strings.Trim(strings.TrimSpace(title), `"`),
		Items: Parse(reply, mode),
	}, nil
}

// Refine feeds the prior outline plus free-text feedback back to the
// model and reparses the result. The prior title is kept.
func (g *Generator) Refine(ctx context.Context, prior Outline, feedback string, mode Mode) (Outline, error) {
	prompt := fmt.Sprintf(
		"Here is the current outline:\n\n%s\n\nRevise it according to this feedback:\n%s\n\n%s",
		prior.Format(mode), feedback, formatRules(len(prior.Items), mode))

	reply, err := g.completer.Complete(ctx, plannerInstruction, prompt)
	if err != nil {
		return Outline{}, fmt.Errorf("refine outline: %w", err)
	}

	items := Parse(reply, mode)
	if len(items) == 0 {
		// Unusable reply: keep the prior structure rather than losing it.
		return prior, nil
	}

	return Outline{Title: prior.Title, Items: items}, nil
}

func buildPrompt(description string, count int, mode Mode) string {
	return fmt.Sprintf(
		"Create an outline for the following content:\n\n%s\n\n%s",
		description, formatRules(count, mode))
}

func formatRules(count int, mode Mode) string {
	kw := mode.Keyword()
	return fmt.Sprintf(
		"Produce exactly %d items. Format each item as:\n"+
			"%s N: <title>\n"+
			"followed by 3-5 short bullet points starting with \"- \". "+
			"Output nothing else.", count, kw)
}
