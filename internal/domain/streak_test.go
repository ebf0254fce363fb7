package domain_test

import (
	"testing"
	"time"

	"github.com/Shiki0x/nymph/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func done(habit, s string) domain.HabitEvent {
	return domain.HabitEvent{Habit: habit, Completed: true, CreatedAt: day(s)}
}

func streakFor(t *testing.T, results []domain.StreakResult, habit string) int {
	t.Helper()
	for _, r := range results {
		if r.Habit == habit {
			return r.Streak
		}
	}
	t.Fatalf("no result for habit %q", habit)
	return 0
}

func TestCurrentStreaks(t *testing.T) {
	tests := []struct {
		name   string
		events []domain.HabitEvent
		today  string
		want   int
	}{
		{
			"three consecutive days ending today",
			[]domain.HabitEvent{done("read", "2024-01-01"), done("read", "2024-01-02"), done("read", "2024-01-03")},
			"2024-01-03", 3,
		},
		{
			"grace period covers yesterday",
			[]domain.HabitEvent{done("read", "2024-01-01"), done("read", "2024-01-02"), done("read", "2024-01-03")},
			"2024-01-04", 3,
		},
		{
			"two day gap resets to zero",
			[]domain.HabitEvent{done("read", "2024-01-01"), done("read", "2024-01-02"), done("read", "2024-01-03")},
			"2024-01-05", 0,
		},
		{
			"today only",
			[]domain.HabitEvent{done("read", "2024-01-03")},
			"2024-01-03", 1,
		},
		{
			"today counts despite gap yesterday",
			[]domain.HabitEvent{done("read", "2024-01-01"), done("read", "2024-01-03")},
			"2024-01-03", 1,
		},
		{
			"yesterday counts despite gap before it",
			[]domain.HabitEvent{done("read", "2024-01-01"), done("read", "2024-01-03")},
			"2024-01-04", 1,
		},
		{
			"grace period spans two credited days",
			[]domain.HabitEvent{done("read", "2024-01-02"), done("read", "2024-01-03")},
			"2024-01-04", 2,
		},
		{
			"no completion today or yesterday",
			[]domain.HabitEvent{done("read", "2024-01-01")},
			"2024-01-04", 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results := domain.CurrentStreaks(tc.events, day(tc.today))
			if got := streakFor(t, results, "read"); got != tc.want {
				t.Errorf("streak = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestCurrentStreaksDedupesSameDay(t *testing.T) {
	morning := day("2024-01-03").Add(9 * time.Hour)
	evening := day("2024-01-03").Add(18 * time.Hour)
	events := []domain.HabitEvent{
		{Habit: "read", Completed: true, CreatedAt: morning},
		{Habit: "read", Completed: true, CreatedAt: evening},
	}

	results := domain.CurrentStreaks(events, day("2024-01-03"))
	if got := streakFor(t, results, "read"); got != 1 {
		t.Errorf("streak = %d; want 1 (same-day repeats collapse)", got)
	}
}

func TestCurrentStreaksIgnoresIncomplete(t *testing.T) {
	events := []domain.HabitEvent{
		{Habit: "run", Completed: false, CreatedAt: day("2024-01-03")},
		done("read", "2024-01-03"),
	}

	results := domain.CurrentStreaks(events, day("2024-01-03"))
	if len(results) != 1 {
		t.Fatalf("got %d results; want 1 (incomplete-only habits are absent)", len(results))
	}
	if results[0].Habit != "read" {
		t.Errorf("habit = %q; want %q", results[0].Habit, "read")
	}
}

func TestCurrentStreaksEmptyInput(t *testing.T) {
	results := domain.CurrentStreaks(nil, day("2024-01-03"))
	if len(results) != 0 {
		t.Errorf("got %d results; want 0", len(results))
	}
}

func TestCurrentStreaksMultipleHabits(t *testing.T) {
	events := []domain.HabitEvent{
		done("read", "2024-01-02"), done("read", "2024-01-03"),
		done("run", "2024-01-03"),
		{Habit: "meditate", Completed: false, CreatedAt: day("2024-01-03")},
	}

	results := domain.CurrentStreaks(events, day("2024-01-03"))
	if len(results) != 2 {
		t.Fatalf("got %d results; want 2", len(results))
	}
	if got := streakFor(t, results, "read"); got != 2 {
		t.Errorf("read streak = %d; want 2", got)
	}
	if got := streakFor(t, results, "run"); got != 1 {
		t.Errorf("run streak = %d; want 1", got)
	}
}

func TestCurrentStreaksIdempotent(t *testing.T) {
	events := []domain.HabitEvent{done("read", "2024-01-02"), done("read", "2024-01-03")}
	today := day("2024-01-03")

	first := domain.CurrentStreaks(events, today)
	second := domain.CurrentStreaks(events, today)
	if streakFor(t, first, "read") != streakFor(t, second, "read") {
		t.Error("repeated evaluation over the same snapshot changed the result")
	}
}

func TestCurrentStreaksIgnoresTimeOfDay(t *testing.T) {
	events := []domain.HabitEvent{
		{Habit: "read", Completed: true, CreatedAt: day("2024-01-02").Add(23*time.Hour + 59*time.Minute)},
		{Habit: "read", Completed: true, CreatedAt: day("2024-01-03").Add(1 * time.Minute)},
	}

	results := domain.CurrentStreaks(events, day("2024-01-03").Add(12*time.Hour))
	if got := streakFor(t, results, "read"); got != 2 {
		t.Errorf("streak = %d; want 2 (day component only)", got)
	}
}
