package outline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type scriptedCompleter struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (s *scriptedCompleter) Complete(_ context.Context, _, user string) (string, error) {
	s.prompts = append(s.prompts, user)
	if s.err != nil {
		return "", s.err
	}
	reply := s.replies[s.calls%len(s.replies)]
	s.calls++
	return reply, nil
}

func TestGenerate(t *testing.T) {
	fake := &scriptedCompleter{replies: []string{
		`"Road to Launch"`,
		"Slide 1: Why now\n- timing\nSlide 2: The plan\n- steps",
	}}
	g := NewGenerator(fake)

	o, err := g.Generate(context.Background(), "a product launch deck", 2, ModeSlides)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if o.Title != "Road to Launch" {
		t.Errorf("title = %q", o.Title)
	}
	if len(o.Items) != 2 {
		t.Fatalf("got %d items", len(o.Items))
	}
	if fake.calls != 2 {
		t.Errorf("got %d completion calls, want 2 (title + structure)", fake.calls)
	}
	if !strings.Contains(fake.prompts[1], "exactly 2 items") {
		t.Errorf("structure prompt missing item count: %q", fake.prompts[1])
	}
}

func TestGenerateUnusableStructureReply(t *testing.T) {
	fake := &scriptedCompleter{replies: []string{
		"A Title",
		"Sorry, I cannot produce an outline for that.",
	}}
	g := NewGenerator(fake)

	o, err := g.Generate(context.Background(), "something", 3, ModeSlides)
	if err != nil {
		t.Fatalf("unusable structure should not be a hard error: %v", err)
	}
	if o.Title != "A Title" {
		t.Errorf("title = %q", o.Title)
	}
	if len(o.Items) != 0 {
		t.Errorf("got %d items, want 0", len(o.Items))
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	wantErr := errors.New("provider down")
	g := NewGenerator(&scriptedCompleter{err: wantErr})

	if _, err := g.Generate(context.Background(), "topic", 3, ModeSlides); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestRefineKeepsTitleAndReparses(t *testing.T) {
	prior := Outline{
		Title: "Original Title",
		Items: []Item{{Title: "Old", Body: "- old point"}},
	}
	fake := &scriptedCompleter{replies: []string{
		"Slide 1: New direction\n- fresh point\nSlide 2: Follow up\n- more",
	}}
	g := NewGenerator(fake)

	o, err := g.Refine(context.Background(), prior, "make it two slides", ModeSlides)
	if err != nil {
		t.Fatalf("Refine returned error: %v", err)
	}

	if o.Title != "Original Title" {
		t.Errorf("title = %q, want prior title kept", o.Title)
	}
	if len(o.Items) != 2 || o.Items[0].Title != "New direction" {
		t.Errorf("items = %+v", o.Items)
	}
	if !strings.Contains(fake.prompts[0], "Slide 1: Old") {
		t.Errorf("refine prompt missing serialized prior outline: %q", fake.prompts[0])
	}
	if !strings.Contains(fake.prompts[0], "make it two slides") {
		t.Errorf("refine prompt missing feedback")
	}
}

func TestRefineFallsBackToPriorOnUnusableReply(t *testing.T) {
	prior := Outline{Title: "Kept", Items: []Item{{Title: "Only", Body: "- point"}}}
	g := NewGenerator(&scriptedCompleter{replies: []string{"no structure here"}})

	o, err := g.Refine(context.Background(), prior, "feedback", ModeSlides)
	if err != nil {
		t.Fatalf("Refine returned error: %v", err)
	}
	if len(o.Items) != 1 || o.Items[0].Title != "Only" {
		t.Errorf("prior outline not preserved: %+v", o)
	}
}
