package postgres

import (
	"context"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

// AddHabitEvent inserts a new habit log event.
func (d *DB) AddHabitEvent(ctx context.Context, userID int64, habit string, completed bool, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO habit_events(user_id, habit, completed, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		userID, habit, completed, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteHabitEvent removes a habit event by ID, scoped to a user.
func (d *DB) DeleteHabitEvent(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM habit_events WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListRecentHabitEvents returns the most recent habit events up to limit for a user.
func (d *DB) ListRecentHabitEvents(ctx context.Context, userID int64, limit int) ([]domain.HabitEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, habit, completed, created_at FROM habit_events WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HabitEvent, 0, limit)
	for rows.Next() {
		var e domain.HabitEvent
		if err := rows.Scan(&e.ID, &e.Habit, &e.Completed, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListAllHabitEvents returns the full event history for a user, in no
// particular order.
func (d *DB) ListAllHabitEvents(ctx context.Context, userID int64) ([]domain.HabitEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, habit, completed, created_at FROM habit_events WHERE user_id=$1;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.HabitEvent
	for rows.Next() {
		var e domain.HabitEvent
		if err := rows.Scan(&e.ID, &e.Habit, &e.Completed, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		out = append(out, e)
	}
	return out, rows.Err()
}
