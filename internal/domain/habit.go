package domain

import (
	"context"
	"time"
)

// HabitEvent represents a single habit log entry: the user marked a habit
// as done (or explicitly not done) at a point in time. Events are
// immutable once recorded.
type HabitEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Habit     string    `json:"habit"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// HabitEventRepository is the port for habit event persistence.
type HabitEventRepository interface {
	AddHabitEvent(ctx context.Context, userID int64, habit string, completed bool, createdAt time.Time) (int64, error)
	DeleteHabitEvent(ctx context.Context, userID int64, id int64) error
	ListRecentHabitEvents(ctx context.Context, userID int64, limit int) ([]HabitEvent, error)
	ListAllHabitEvents(ctx context.Context, userID int64) ([]HabitEvent, error)
}
