package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

func TestHabitEventRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := int64(1)

	// Add event
	now := time.Now()
	id, err := db.AddHabitEvent(ctx, userID, "read", true, now)
	if err != nil {
		t.Fatalf("AddHabitEvent: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero ID")
	}

	// List recent
	events, err := db.ListRecentHabitEvents(ctx, userID, 10)
	if err != nil {
		t.Fatalf("ListRecentHabitEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
	if events[0].Habit != "read" || !events[0].Completed {
		t.Errorf("unexpected event: %+v", events[0])
	}

	// Other user sees nothing
	events2, _ := db.ListRecentHabitEvents(ctx, 999, 10)
	if len(events2) != 0 {
		t.Error("expected 0 events for other user")
	}

	// Recent ordering: newest first
	_, _ = db.AddHabitEvent(ctx, userID, "run", true, now.Add(time.Hour))
	events, _ = db.ListRecentHabitEvents(ctx, userID, 10)
	if len(events) != 2 || events[0].Habit != "run" {
		t.Errorf("expected newest event first, got %+v", events)
	}

	// Full snapshot
	all, err := db.ListAllHabitEvents(ctx, userID)
	if err != nil {
		t.Fatalf("ListAllHabitEvents: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 events, got %d", len(all))
	}

	// Delete is scoped to the owner
	if err := db.DeleteHabitEvent(ctx, 999, id); err != nil {
		t.Fatalf("DeleteHabitEvent: %v", err)
	}
	all, _ = db.ListAllHabitEvents(ctx, userID)
	if len(all) != 2 {
		t.Error("delete with wrong user should be a no-op")
	}
	if err := db.DeleteHabitEvent(ctx, userID, id); err != nil {
		t.Fatalf("DeleteHabitEvent: %v", err)
	}
	all, _ = db.ListAllHabitEvents(ctx, userID)
	if len(all) != 1 {
		t.Errorf("expected 1 event after delete, got %d", len(all))
	}
}

func TestProfileRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing profile
	p, err := db.GetProfileByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetProfileByUserID: %v", err)
	}
	if p != nil {
		t.Error("expected nil for missing profile")
	}

	// Upsert and fetch by user and slug
	if err := db.UpsertProfile(ctx, domain.Profile{UserID: 1, Slug: "ada", DisplayName: "Ada"}); err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	p, _ = db.GetProfileByUserID(ctx, 1)
	if p == nil || p.Slug != "ada" {
		t.Fatalf("expected profile with slug ada, got %+v", p)
	}
	p, _ = db.GetProfileBySlug(ctx, "ada")
	if p == nil || p.UserID != 1 {
		t.Fatalf("expected profile for user 1, got %+v", p)
	}

	// Update via upsert
	if err := db.UpsertProfile(ctx, domain.Profile{UserID: 1, Slug: "ada", Bio: "hello"}); err != nil {
		t.Fatalf("UpsertProfile update: %v", err)
	}
	p, _ = db.GetProfileByUserID(ctx, 1)
	if p.Bio != "hello" {
		t.Errorf("Bio = %q; want %q", p.Bio, "hello")
	}

	// Slug uniqueness across users
	if err := db.UpsertProfile(ctx, domain.Profile{UserID: 2, Slug: "ada"}); err == nil {
		t.Error("expected error for duplicate slug")
	}
}

func TestLinkAndCardRepositories(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := int64(1)

	// Links keep position order regardless of insertion order
	id1, err := db.AddLink(ctx, userID, "Second", "https://example.com/2", 2)
	if err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	if _, err := db.AddLink(ctx, userID, "First", "https://example.com/1", 1); err != nil {
		t.Fatalf("AddLink: %v", err)
	}

	links, err := db.ListLinks(ctx, userID)
	if err != nil {
		t.Fatalf("ListLinks: %v", err)
	}
	if len(links) != 2 || links[0].Title != "First" {
		t.Errorf("expected position order, got %+v", links)
	}

	if err := db.DeleteLink(ctx, userID, id1); err != nil {
		t.Fatalf("DeleteLink: %v", err)
	}
	links, _ = db.ListLinks(ctx, userID)
	if len(links) != 1 {
		t.Errorf("expected 1 link after delete, got %d", len(links))
	}

	// Cards behave the same way
	if _, err := db.AddCard(ctx, userID, "About", "hi", 0); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	cards, err := db.ListCards(ctx, userID)
	if err != nil {
		t.Fatalf("ListCards: %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "About" {
		t.Errorf("unexpected cards: %+v", cards)
	}

	// Other user is isolated
	otherLinks, _ := db.ListLinks(ctx, 999)
	if len(otherLinks) != 0 {
		t.Error("expected no links for other user")
	}
}

func TestUserAndSessionRepositories(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "ada", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero user ID")
	}

	if _, err := db.Create(ctx, "ada", "hash"); err == nil {
		t.Error("expected error for duplicate username")
	}

	got, _ := db.GetByUsername(ctx, "ada")
	if got == nil || got.ID != u.ID {
		t.Errorf("GetByUsername = %+v; want user %d", got, u.ID)
	}

	count, _ := db.Count(ctx)
	if count != 1 {
		t.Errorf("Count = %d; want 1", count)
	}

	sessions := db.NewSessionRepo()
	if err := sessions.Create(ctx, u.ID, "tok", "agent", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("session Create: %v", err)
	}
	s, _ := sessions.GetByToken(ctx, "tok")
	if s == nil || s.UserID != u.ID || s.UserAgent != "agent" {
		t.Errorf("unexpected session: %+v", s)
	}

	// Expired sessions are swept
	_ = sessions.Create(ctx, u.ID, "old", "agent", time.Now().Add(-time.Hour))
	if err := sessions.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if s, _ := sessions.GetByToken(ctx, "old"); s != nil {
		t.Error("expected expired session to be gone")
	}
	if s, _ := sessions.GetByToken(ctx, "tok"); s == nil {
		t.Error("expected live session to survive sweep")
	}

	if err := sessions.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := sessions.GetByToken(ctx, "tok"); s != nil {
		t.Error("expected session to be deleted")
	}
}
