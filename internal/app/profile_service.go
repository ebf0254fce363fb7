package app

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"

	"github.com/google/uuid"
)

// ErrProfileNotFound indicates that no profile exists for the given slug.
var ErrProfileNotFound = errors.New("profile not found")

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,38}[a-z0-9]$`)

// ProfileService encapsulates profile, link and card use cases, including
// public profile assembly.
type ProfileService struct {
	profiles domain.ProfileRepository
	links    domain.LinkRepository
	cards    domain.CardRepository
	events   domain.HabitEventRepository
}

// NewProfileService creates a ProfileService backed by the given repositories.
func NewProfileService(pr domain.ProfileRepository, lr domain.LinkRepository, cr domain.CardRepository, er domain.HabitEventRepository) *ProfileService {
	return &ProfileService{profiles: pr, links: lr, cards: cr, events: er}
}

// Get returns the user's profile, creating one with a generated slug on
// first access.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	created := domain.Profile{
		UserID:    userID,
		Slug:      uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := s.profiles.UpsertProfile(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update changes the profile's slug, display name or bio. An empty slug
// keeps the current one.
func (s *ProfileService) Update(ctx context.Context, userID int64, slug, displayName, bio string) (*domain.Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	slug = strings.TrimSpace(slug)
	if slug != "" && slug != p.Slug {
		if !slugPattern.MatchString(slug) {
			return nil, errors.New("slug must be 3-40 lowercase letters, digits or hyphens")
		}
		other, err := s.profiles.GetProfileBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if other != nil && other.UserID != userID {
			return nil, errors.New("slug already in use")
		}
		p.Slug = slug
	}

	p.DisplayName = strings.TrimSpace(displayName)
	p.Bio = strings.TrimSpace(bio)
	if err := s.profiles.UpsertProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddLink validates and stores a profile link.
func (s *ProfileService) AddLink(ctx context.Context, userID int64, title, rawURL string, position int) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, errors.New("link title must not be empty")
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return 0, errors.New("link url must be a valid http(s) URL")
	}
	return s.links.AddLink(ctx, userID, title, u.String(), position)
}

// DeleteLink removes one of the user's links.
func (s *ProfileService) DeleteLink(ctx context.Context, userID int64, id int64) error {
	return s.links.DeleteLink(ctx, userID, id)
}

// ListLinks returns the user's links in position order.
func (s *ProfileService) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	return s.links.ListLinks(ctx, userID)
}

// AddCard validates and stores a profile card.
func (s *ProfileService) AddCard(ctx context.Context, userID int64, title, body string, position int) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, errors.New("card title must not be empty")
	}
	if len(body) > 4000 {
		return 0, errors.New("card body must be at most 4000 characters")
	}
	return s.cards.AddCard(ctx, userID, title, body, position)
}

// DeleteCard removes one of the user's cards.
func (s *ProfileService) DeleteCard(ctx context.Context, userID int64, id int64) error {
	return s.cards.DeleteCard(ctx, userID, id)
}

// ListCards returns the user's cards in position order.
func (s *ProfileService) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	return s.cards.ListCards(ctx, userID)
}

// PublicProfile is the assembled shareable page for a slug.
type PublicProfile struct {
	Slug        string                `json:"slug"`
	DisplayName string                `json:"displayName"`
	Bio         string                `json:"bio"`
	Links       []domain.Link         `json:"links"`
	Cards       []domain.Card         `json:"cards"`
	Streaks     []domain.StreakResult `json:"streaks"`
}

// GetPublic assembles the public profile for a slug: identity, links,
// cards and the owner's current streaks as of today.
func (s *ProfileService) GetPublic(ctx context.Context, slug string, today time.Time) (*PublicProfile, error) {
	p, err := s.profiles.GetProfileBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	links, err := s.links.ListLinks(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.ListCards(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListAllHabitEvents(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	streaks := domain.CurrentStreaks(events, today)
	sort.Slice(streaks, func(i, j int) bool {
		return streaks[i].Habit < streaks[j].Habit
	})

	return &PublicProfile{
		Slug:        p.Slug,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Links:       links,
		Cards:       cards,
		Streaks:     streaks,
	}, nil
}
