package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

// HabitService encapsulates habit-logging use cases.
type HabitService struct {
	repo domain.HabitEventRepository
}

// NewHabitService creates a HabitService backed by the given repository.
func NewHabitService(repo domain.HabitEventRepository) *HabitService {
	return &HabitService{repo: repo}
}

// Log validates and stores a habit completion event. The habit name is
// trimmed but not otherwise normalized.
func (s *HabitService) Log(ctx context.Context, userID int64, habit string, completed bool) (int64, error) {
	habit = strings.TrimSpace(habit)
	if habit == "" {
		return 0, errors.New("habit name must not be empty")
	}
	if len(habit) > 200 {
		return 0, errors.New("habit name must be at most 200 characters")
	}
	return s.repo.AddHabitEvent(ctx, userID, habit, completed, time.Now())
}

// ListRecent returns the most recent habit events up to limit.
func (s *HabitService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.HabitEvent, error) {
	return s.repo.ListRecentHabitEvents(ctx, userID, limit)
}

// UndoLast deletes the most recent habit event.
func (s *HabitService) UndoLast(ctx context.Context, userID int64) (bool, int64, error) {
	items, err := s.repo.ListRecentHabitEvents(ctx, userID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	if err := s.repo.DeleteHabitEvent(ctx, userID, items[0].ID); err != nil {
		return false, 0, err
	}
	return true, items[0].ID, nil
}
