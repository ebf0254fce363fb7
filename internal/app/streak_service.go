package app

import (
	"context"
	"sort"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

// StreakService computes current streaks from the habit event history.
type StreakService struct {
	repo domain.HabitEventRepository
}

// NewStreakService creates a StreakService backed by the given repository.
func NewStreakService(repo domain.HabitEventRepository) *StreakService {
	return &StreakService{repo: repo}
}

// Current fetches the user's full event history and returns the current
// streak for every habit with at least one completed event, sorted by
// habit name. The evaluation date is passed in by the caller; only its
// day component matters.
func (s *StreakService) Current(ctx context.Context, userID int64, today time.Time) ([]domain.StreakResult, error) {
	events, err := s.repo.ListAllHabitEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := domain.CurrentStreaks(events, today)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Habit < results[j].Habit
	})
	return results, nil
}
