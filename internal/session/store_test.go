package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kwameadu/doc-studio-api/internal/db"
	"github.com/kwameadu/doc-studio-api/internal/outline"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewStore(conn)
}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.GetOrCreate(ctx, "")
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("new session has no ID")
	}

	loaded, err := store.GetOrCreate(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if loaded.ID != created.ID {
		t.Errorf("loaded %q, want %q", loaded.ID, created.ID)
	}

	// Unknown IDs create a fresh session rather than failing.
	fresh, err := store.GetOrCreate(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if fresh.ID == "does-not-exist" {
		t.Error("unknown ID should not be adopted")
	}
}

func TestChatHistoryOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess, _ := store.GetOrCreate(ctx, "")
	for _, m := range []struct{ role, content string }{
		{RoleUser, "first question"},
		{RoleAssistant, "first answer"},
		{RoleUser, "second question"},
	} {
		if err := store.AppendMessage(ctx, sess.ID, m.role, m.content); err != nil {
			t.Fatalf("AppendMessage returned error: %v", err)
		}
	}

	history, err := store.History(ctx, sess.ID)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d messages, want 3", len(history))
	}
	if history[0].Content != "first question" || history[2].Content != "second question" {
		t.Errorf("history out of order: %+v", history)
	}
}

func TestOutlineRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess, _ := store.GetOrCreate(ctx, "")

	if _, ok, err := store.Outline(ctx, sess.ID); err != nil || ok {
		t.Fatalf("expected no cached outline, got ok=%v err=%v", ok, err)
	}

	want := outline.Outline{
		Title: "Deck",
		Items: []outline.Item{{Title: "One", Body: "- a"}},
	}
	if err := store.SaveOutline(ctx, sess.ID, want); err != nil {
		t.Fatalf("SaveOutline returned error: %v", err)
	}

	got, ok, err := store.Outline(ctx, sess.ID)
	if err != nil || !ok {
		t.Fatalf("Outline returned ok=%v err=%v", ok, err)
	}
	if got.Title != want.Title || len(got.Items) != 1 || got.Items[0] != want.Items[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestArtifactsAndCascadeDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess, _ := store.GetOrCreate(ctx, "")
	artifact := &Artifact{
		Key:         "staging-key-1",
		SessionID:   sess.ID,
		Filename:    "deck.pptx",
		ContentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.RecordArtifact(ctx, artifact); err != nil {
		t.Fatalf("RecordArtifact returned error: %v", err)
	}

	got, err := store.Artifact(ctx, artifact.Key)
	if err != nil {
		t.Fatalf("Artifact returned error: %v", err)
	}
	if got == nil || got.Filename != "deck.pptx" {
		t.Fatalf("got %+v", got)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	gone, err := store.Artifact(ctx, artifact.Key)
	if err != nil {
		t.Fatalf("Artifact returned error: %v", err)
	}
	if gone != nil {
		t.Error("artifact survived session delete")
	}
}
