// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	habitEvents []domain.HabitEvent
	profiles    map[int64]*domain.Profile
	links       []domain.Link
	cards       []domain.Card
	users       []*domain.User
	sessions    map[string]*domain.Session

	eventIDCounter int64
	linkIDCounter  int64
	cardIDCounter  int64
	userIDCounter  int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]*domain.Profile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.HabitEventRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.LinkRepository = (*DB)(nil)
var _ domain.CardRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- HabitEventRepository ---

// AddHabitEvent adds a habit log event.
func (db *DB) AddHabitEvent(ctx context.Context, userID int64, habit string, completed bool, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.eventIDCounter++
	id := db.eventIDCounter

	db.habitEvents = append(db.habitEvents, domain.HabitEvent{
		ID:        id,
		UserID:    userID,
		Habit:     habit,
		Completed: completed,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteHabitEvent deletes a habit event by ID.
func (db *DB) DeleteHabitEvent(ctx context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.habitEvents {
		if e.ID == id && e.UserID == userID {
			db.habitEvents = append(db.habitEvents[:i], db.habitEvents[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListRecentHabitEvents lists the most recent habit events for a user.
func (db *DB) ListRecentHabitEvents(ctx context.Context, userID int64, limit int) ([]domain.HabitEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.HabitEvent, 0, limit)
	for _, e := range db.habitEvents {
		if e.UserID == userID {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListAllHabitEvents returns every habit event for a user.
func (db *DB) ListAllHabitEvents(ctx context.Context, userID int64) ([]domain.HabitEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.HabitEvent
	for _, e := range db.habitEvents {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// --- ProfileRepository ---

// GetProfileByUserID retrieves a profile by owner.
func (db *DB) GetProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[userID]; ok {
		ret := *p
		return &ret, nil
	}
	return nil, nil
}

// GetProfileBySlug retrieves a profile by slug.
func (db *DB) GetProfileBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, p := range db.profiles {
		if p.Slug == slug {
			ret := *p
			return &ret, nil
		}
	}
	return nil, nil
}

// UpsertProfile inserts or replaces a profile.
func (db *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, other := range db.profiles {
		if other.Slug == p.Slug && other.UserID != p.UserID {
			return errors.New("slug already in use")
		}
	}

	stored := p
	db.profiles[p.UserID] = &stored
	return nil
}

// --- LinkRepository ---

// AddLink adds a profile link.
func (db *DB) AddLink(ctx context.Context, userID int64, title, url string, position int) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.linkIDCounter++
	id := db.linkIDCounter

	db.links = append(db.links, domain.Link{
		ID:       id,
		UserID:   userID,
		Title:    title,
		URL:      url,
		Position: position,
	})
	return id, nil
}

// DeleteLink deletes a link by ID.
func (db *DB) DeleteLink(ctx context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, l := range db.links {
		if l.ID == id && l.UserID == userID {
			db.links = append(db.links[:i], db.links[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListLinks lists a user's links in position order.
func (db *DB) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Link, 0, 8)
	for _, l := range db.links {
		if l.UserID == userID {
			result = append(result, l)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// --- CardRepository ---

// AddCard adds a profile card.
func (db *DB) AddCard(ctx context.Context, userID int64, title, body string, position int) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.cardIDCounter++
	id := db.cardIDCounter

	db.cards = append(db.cards, domain.Card{
		ID:       id,
		UserID:   userID,
		Title:    title,
		Body:     body,
		Position: position,
	})
	return id, nil
}

// DeleteCard deletes a card by ID.
func (db *DB) DeleteCard(ctx context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, c := range db.cards {
		if c.ID == id && c.UserID == userID {
			db.cards = append(db.cards[:i], db.cards[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListCards lists a user's cards in position order.
func (db *DB) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Card, 0, 8)
	for _, c := range db.cards {
		if c.UserID == userID {
			result = append(result, c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		ret := *s
		return &ret, nil
	}
	return nil, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
