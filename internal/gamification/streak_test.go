package gamification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ryankirkland/99grind/internal/gamification"
)

// mercredi 14 janvier 2026, milieu de semaine pour éviter les effets de bord
var now = time.Date(2026, 1, 14, 18, 30, 0, 0, time.UTC)

func days(offsets ...int) []time.Time {
	dates := make([]time.Time, 0, len(offsets))
	for _, off := range offsets {
		dates = append(dates, now.AddDate(0, 0, -off))
	}
	return dates
}

func TestDayStreak(t *testing.T) {
	tests := []struct {
		name     string
		dates    []time.Time
		expected int
	}{
		{"no workouts", nil, 0},
		{"today only", days(0), 1},
		{"yesterday only", days(1), 1},
		{"three consecutive days ending today", days(0, 1, 2), 3},
		{"three consecutive days ending yesterday", days(1, 2, 3), 3},
		{"gap two days ago breaks the walk", days(0, 1, 3), 2},
		{"last workout two days ago", days(2), 0},
		{"gap yesterday and today", days(2, 3, 4), 0},
		{"duplicate same-day workouts count once", append(days(0, 0, 1), now.Add(-2*time.Hour)), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, gamification.DayStreak(tc.dates, now))
		})
	}
}

func TestWeekStreak(t *testing.T) {
	tests := []struct {
		name     string
		dates    []time.Time
		expected int
	}{
		{"no workouts", nil, 0},
		{"this week only", days(0), 1},
		{"last week only", days(7), 1},
		{"two weeks ago only", days(14), 0},
		{"this week and last week", days(0, 7), 2},
		{"four consecutive weeks", days(0, 7, 14, 21), 4},
		{"gap at week two stops the walk", days(0, 7, 21), 2},
		{"anchored on last week, two weeks deep", days(7, 14), 2},
		{"several workouts in one week count once", days(0, 1, 2), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, gamification.WeekStreak(tc.dates, now))
		})
	}
}

func TestWeekStreak_MondayBoundary(t *testing.T) {
	// lundi: la veille (dimanche) est la semaine précédente
	monday := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, -1)

	assert.Equal(t, 1, gamification.WeekStreak([]time.Time{sunday}, monday))
	assert.Equal(t, 2, gamification.WeekStreak([]time.Time{monday, sunday}, monday))
}

func TestDayStreak_RecomputationIsIdempotent(t *testing.T) {
	dates := days(0, 1, 2, 5, 6)
	first := gamification.DayStreak(dates, now)
	second := gamification.DayStreak(dates, now)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, first)
}

func TestWorkedOutOn(t *testing.T) {
	assert.True(t, gamification.WorkedOutOn(days(0), now))
	assert.False(t, gamification.WorkedOutOn(days(1), now))
	// même jour calendaire, heure différente
	assert.True(t, gamification.WorkedOutOn([]time.Time{now.Truncate(24 * time.Hour)}, now))
}
