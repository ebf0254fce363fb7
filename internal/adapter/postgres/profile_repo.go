package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Shiki0x/nymph/internal/domain"
)

// GetProfileByUserID retrieves a profile by owner.
func (d *DB) GetProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return d.scanProfile(d.sql.QueryRowContext(ctx,
		"SELECT user_id, slug, display_name, bio, created_at FROM profiles WHERE user_id = $1", userID))
}

// GetProfileBySlug retrieves a profile by its public slug.
func (d *DB) GetProfileBySlug(ctx context.Context, slug string) (*domain.Profile, error) {
	return d.scanProfile(d.sql.QueryRowContext(ctx,
		"SELECT user_id, slug, display_name, bio, created_at FROM profiles WHERE slug = $1", slug))
}

func (d *DB) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.Slug, &p.DisplayName, &p.Bio, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile inserts or replaces the profile row for a user.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles (user_id, slug, display_name, bio, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET slug = $2, display_name = $3, bio = $4`,
		p.UserID, p.Slug, p.DisplayName, p.Bio, p.CreatedAt.UTC(),
	)
	return err
}

// AddLink inserts a profile link.
func (d *DB) AddLink(ctx context.Context, userID int64, title, url string, position int) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO links(user_id, title, url, position) VALUES($1, $2, $3, $4) RETURNING id;",
		userID, title, url, position,
	).Scan(&id)
	return id, err
}

// DeleteLink removes a link by ID, scoped to a user.
func (d *DB) DeleteLink(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM links WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListLinks returns a user's links ordered by position, then ID.
func (d *DB) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, title, url, position FROM links WHERE user_id=$1 ORDER BY position, id;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Link, 0, 8)
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.Title, &l.URL, &l.Position); err != nil {
			return nil, err
		}
		l.UserID = userID
		out = append(out, l)
	}
	return out, rows.Err()
}

// AddCard inserts a profile card.
func (d *DB) AddCard(ctx context.Context, userID int64, title, body string, position int) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO cards(user_id, title, body, position) VALUES($1, $2, $3, $4) RETURNING id;",
		userID, title, body, position,
	).Scan(&id)
	return id, err
}

// DeleteCard removes a card by ID, scoped to a user.
func (d *DB) DeleteCard(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM cards WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListCards returns a user's cards ordered by position, then ID.
func (d *DB) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, title, body, position FROM cards WHERE user_id=$1 ORDER BY position, id;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Card, 0, 8)
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.Position); err != nil {
			return nil, err
		}
		c.UserID = userID
		out = append(out, c)
	}
	return out, rows.Err()
}
