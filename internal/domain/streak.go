package domain

import "time"

const dayFormat = "2006-01-02"

// StreakResult is the current consecutive-day streak for one habit.
type StreakResult struct {
	Habit  string `json:"habit"`
	Streak int    `json:"streak"`
}

// CreditedDays buckets completed events into per-habit sets of calendar
// days. The day is taken from the event timestamp as-is; multiple
// completions on the same day collapse to one credited day. Events with
// Completed == false are ignored entirely, so a habit that was only ever
// logged as not-done has no entry in the result.
func CreditedDays(events []HabitEvent) map[string]map[string]bool {
	days := make(map[string]map[string]bool)
	for _, e := range events {
		if !e.Completed {
			continue
		}
		set := days[e.Habit]
		if set == nil {
			set = make(map[string]bool)
			days[e.Habit] = set
		}
		set[e.CreatedAt.Format(dayFormat)] = true
	}
	return days
}

// CurrentStreaks computes the current streak for every habit with at
// least one completed event. The evaluation date is passed in by the
// caller so the computation stays deterministic; only its day component
// is used.
//
// The walk anchors at today when today is credited, otherwise at
// yesterday: a habit not yet completed today keeps showing its running
// streak for one more day instead of dropping to zero. From the anchor
// it counts backward while consecutive days are credited, stopping at
// the first gap. An uncredited anchor yields a streak of 0.
//
// Result order is unspecified; callers that need determinism sort.
func CurrentStreaks(events []HabitEvent, today time.Time) []StreakResult {
	byHabit := CreditedDays(events)

	results := make([]StreakResult, 0, len(byHabit))
	for habit, days := range byHabit {
		anchor := today
		if !days[today.Format(dayFormat)] {
			anchor = today.AddDate(0, 0, -1)
		}

		streak := 0
		for d := anchor; days[d.Format(dayFormat)]; d = d.AddDate(0, 0, -1) {
			streak++
		}
		results = append(results, StreakResult{Habit: habit, Streak: streak})
	}
	return results
}
