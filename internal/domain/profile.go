package domain

import (
	"context"
	"time"
)

// Profile is the public-facing identity of a user, addressed by slug.
type Profile struct {
	UserID      int64     `json:"-"`
	Slug        string    `json:"slug"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Link is a single outbound link shown on a profile page.
type Link struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"-"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Card is a free-form content block shown on a profile page.
type Card struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"-"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Position int    `json:"position"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID int64) (*Profile, error)
	GetProfileBySlug(ctx context.Context, slug string) (*Profile, error)
	UpsertProfile(ctx context.Context, p Profile) error
}

// LinkRepository is the port for profile link persistence.
type LinkRepository interface {
	AddLink(ctx context.Context, userID int64, title, url string, position int) (int64, error)
	DeleteLink(ctx context.Context, userID int64, id int64) error
	ListLinks(ctx context.Context, userID int64) ([]Link, error)
}

// CardRepository is the port for profile card persistence.
type CardRepository interface {
	AddCard(ctx context.Context, userID int64, title, body string, position int) (int64, error)
	DeleteCard(ctx context.Context, userID int64, id int64) error
	ListCards(ctx context.Context, userID int64) ([]Card, error)
}
