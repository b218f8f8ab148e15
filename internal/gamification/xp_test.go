package gamification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryankirkland/99grind/internal/gamification"
	model "github.com/ryankirkland/99grind/internal/models"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, 1, gamification.Level(0))
	assert.Equal(t, 1, gamification.Level(999))
	assert.Equal(t, 2, gamification.Level(1000))
	assert.Equal(t, 3, gamification.Level(2500))
	assert.Equal(t, 1, gamification.Level(-10))
}

func TestWorkoutEffort(t *testing.T) {
	types := map[string]string{
		"bench":   "Strength",
		"running": "Cardio",
	}

	effort := gamification.WorkoutEffort([]model.WorkoutExerciseInput{
		{
			ExerciseID: "bench",
			Sets: []model.WorkoutSetInput{
				{Reps: 10, Weight: 60},
				{Reps: 8, Weight: 70},
			},
		},
		{
			ExerciseID: "running",
			Sets: []model.WorkoutSetInput{
				{Reps: 1},
				{Reps: 1},
				{Reps: 1},
			},
		},
	}, types)

	// 100 base + 10 par série (5 séries)
	assert.Equal(t, 150, effort.XP)
	assert.Equal(t, map[string]int{"strength": 2, "cardio": 3}, effort.Stats)
}

func TestWorkoutEffort_UnknownTypeDefaultsToGeneral(t *testing.T) {
	effort := gamification.WorkoutEffort([]model.WorkoutExerciseInput{
		{
			ExerciseID: "mystery",
			Sets:       []model.WorkoutSetInput{{Reps: 12}},
		},
	}, map[string]string{})

	assert.Equal(t, 110, effort.XP)
	assert.Equal(t, map[string]int{"general": 1}, effort.Stats)
}

func TestWorkoutEffort_EmptySetsDropped(t *testing.T) {
	effort := gamification.WorkoutEffort([]model.WorkoutExerciseInput{
		{ExerciseID: "bench", Sets: nil},
	}, map[string]string{"bench": "Strength"})

	assert.Equal(t, gamification.BaseWorkoutXP, effort.XP)
	assert.Empty(t, effort.Stats)
}

func TestRestDayEffort(t *testing.T) {
	effort := gamification.RestDayEffort()
	assert.Equal(t, 10, effort.XP)
	assert.Equal(t, map[string]int{"rest_days": 1}, effort.Stats)
}

func TestEffortFromSetCounts_MatchesWorkoutEffort(t *testing.T) {
	types := map[string]string{"squat": "Strength", "yoga": "Flexibility"}

	fromInput := gamification.WorkoutEffort([]model.WorkoutExerciseInput{
		{ExerciseID: "squat", Sets: make([]model.WorkoutSetInput, 4)},
		{ExerciseID: "yoga", Sets: make([]model.WorkoutSetInput, 2)},
	}, types)

	fromLogs := gamification.EffortFromSetCounts(map[string]int{
		"squat": 4,
		"yoga":  2,
	}, types)

	assert.Equal(t, fromInput.XP, fromLogs.XP)
	assert.Equal(t, fromInput.Stats, fromLogs.Stats)
}

func TestApplyEffort(t *testing.T) {
	stats, xp, level := gamification.ApplyEffort(
		map[string]int{"strength": 5},
		950,
		gamification.Effort{XP: 150, Stats: map[string]int{"strength": 2, "cardio": 3}},
	)

	assert.Equal(t, map[string]int{"strength": 7, "cardio": 3}, stats)
	assert.Equal(t, 1100, xp)
	assert.Equal(t, 2, level)
}

func TestRevertEffort_FloorsAtZero(t *testing.T) {
	stats, xp, level := gamification.RevertEffort(
		map[string]int{"strength": 1, "cardio": 0},
		50,
		gamification.Effort{XP: 120, Stats: map[string]int{"strength": 3, "cardio": 2}},
	)

	assert.Equal(t, map[string]int{"strength": 0, "cardio": 0}, stats)
	assert.Equal(t, 0, xp)
	assert.Equal(t, 1, level)
}

// Éditer un workout avec des données identiques doit laisser le profil
// inchangé: revert puis re-apply de la même contribution = delta nul.
func TestRevertThenReapply_IsIdempotent(t *testing.T) {
	types := map[string]string{"bench": "Strength", "row": "Strength", "bike": "Cardio"}
	input := []model.WorkoutExerciseInput{
		{ExerciseID: "bench", Sets: make([]model.WorkoutSetInput, 3)},
		{ExerciseID: "row", Sets: make([]model.WorkoutSetInput, 3)},
		{ExerciseID: "bike", Sets: make([]model.WorkoutSetInput, 2)},
	}

	baseStats := map[string]int{"strength": 10, "cardio": 4, "rest_days": 2}
	baseXP := 3240

	// Create
	effort := gamification.WorkoutEffort(input, types)
	stats, xp, _ := gamification.ApplyEffort(baseStats, baseXP, effort)

	// Update avec les mêmes données: l'ancienne contribution est
	// reconstruite depuis les logs granulaires (sets=1 par ligne)
	oldEffort := gamification.EffortFromSetCounts(map[string]int{
		"bench": 3, "row": 3, "bike": 2,
	}, types)
	revStats, revXP, _ := gamification.RevertEffort(stats, xp, oldEffort)
	newStats, newXP, newLevel := gamification.ApplyEffort(revStats, revXP, gamification.WorkoutEffort(input, types))

	assert.Equal(t, stats, newStats)
	assert.Equal(t, xp, newXP)
	assert.Equal(t, gamification.Level(xp), newLevel)
}

func TestNewBadges(t *testing.T) {
	earned := gamification.NewBadges(4, 5, nil)
	require.Len(t, earned, 1)
	assert.Equal(t, "Committed", earned[0])

	// Pas de ré-attribution
	assert.Empty(t, gamification.NewBadges(4, 6, []string{"Committed"}))

	// Plusieurs paliers franchis d'un coup
	earned = gamification.NewBadges(1, 12, nil)
	assert.Equal(t, []string{"Committed", "Relentless"}, earned)

	// Une baisse de niveau ne retire rien
	assert.Empty(t, gamification.NewBadges(6, 5, nil))
}
