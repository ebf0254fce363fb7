package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shiki0x/nymph/internal/app"
	"github.com/Shiki0x/nymph/internal/domain"
)

func eventOn(habit, day string) domain.HabitEvent {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return domain.HabitEvent{Habit: habit, Completed: true, CreatedAt: t}
}

func TestStreaksCurrent_SortedByHabit(t *testing.T) {
	repo := &mockHabitRepo{
		listAllFn: func(_ context.Context, _ int64) ([]domain.HabitEvent, error) {
			return []domain.HabitEvent{
				eventOn("write", "2024-01-03"),
				eventOn("read", "2024-01-02"),
				eventOn("read", "2024-01-03"),
				eventOn("meditate", "2024-01-03"),
			}, nil
		},
	}
	svc := app.NewStreakService(repo)

	today, _ := time.Parse("2006-01-02", "2024-01-03")
	results, err := svc.Current(context.Background(), 1, today)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	want := []domain.StreakResult{
		{Habit: "meditate", Streak: 1},
		{Habit: "read", Streak: 2},
		{Habit: "write", Streak: 1},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %+v; want %+v", i, results[i], want[i])
		}
	}
}

func TestStreaksCurrent_EmptyHistory(t *testing.T) {
	svc := app.NewStreakService(&mockHabitRepo{})

	results, err := svc.Current(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for empty history; want 0", len(results))
	}
}

func TestStreaksCurrent_StoreFailure(t *testing.T) {
	repo := &mockHabitRepo{
		listAllFn: func(_ context.Context, _ int64) ([]domain.HabitEvent, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := app.NewStreakService(repo)

	if _, err := svc.Current(context.Background(), 1, time.Now()); err == nil {
		t.Error("expected store error to surface")
	}
}
