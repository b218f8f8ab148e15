package gamification

import (
	"strings"

	model "github.com/ryankirkland/99grind/internal/models"
)

const (
	// BaseWorkoutXP est accordée pour tout workout terminé,
	// PerSetXP s'ajoute pour chaque série complétée.
	BaseWorkoutXP = 100
	PerSetXP      = 10

	// RestDayXP est l'XP fixe d'un Rest Day (pas de calcul par exercice).
	RestDayXP = 10

	// XPPerLevel: level = 1 + floor(xp / XPPerLevel)
	XPPerLevel = 1000

	// RestDaysStatKey est la clé de stats incrémentée par logRestDay.
	RestDaysStatKey = "rest_days"
)

// Effort est la contribution d'un workout au profil: l'XP attribuée et
// le delta de stats par type d'exercice (clé en minuscules).
type Effort struct {
	XP    int
	Stats map[string]int
}

// Level dérive le niveau depuis l'XP cumulée. Recalculé à chaque
// changement d'XP, jamais stocké comme source de vérité.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/XPPerLevel
}

// WorkoutEffort calcule l'XP et le delta de stats d'un workout soumis.
// Seules les séries complétées arrivent ici (le client filtre), et les
// exercices sans série sont ignorés. Un exercice absent de typeByExercise
// compte comme "General": il rapporte son XP mais alimente le bucket general.
func WorkoutEffort(exercises []model.WorkoutExerciseInput, typeByExercise map[string]string) Effort {
	effort := Effort{
		XP:    BaseWorkoutXP,
		Stats: make(map[string]int),
	}

	for _, ex := range exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		exType, ok := typeByExercise[ex.ExerciseID]
		if !ok || exType == "" {
			exType = model.ExerciseTypeGeneral
		}
		effort.XP += len(ex.Sets) * PerSetXP
		effort.Stats[strings.ToLower(exType)] += len(ex.Sets)
	}

	return effort
}

// EffortFromSetCounts reconstruit la contribution d'un workout existant
// depuis ses lignes de log (nombre de séries par exercice). Utilisé par
// updateWorkout pour annuler l'ancienne contribution avant d'appliquer
// la nouvelle.
func EffortFromSetCounts(setsByExercise map[string]int, typeByExercise map[string]string) Effort {
	effort := Effort{
		XP:    BaseWorkoutXP,
		Stats: make(map[string]int),
	}

	for exerciseID, sets := range setsByExercise {
		if sets <= 0 {
			continue
		}
		exType, ok := typeByExercise[exerciseID]
		if !ok || exType == "" {
			exType = model.ExerciseTypeGeneral
		}
		effort.XP += sets * PerSetXP
		effort.Stats[strings.ToLower(exType)] += sets
	}

	return effort
}

// RestDayEffort est la contribution fixe d'un Rest Day.
func RestDayEffort() Effort {
	return Effort{
		XP:    RestDayXP,
		Stats: map[string]int{RestDaysStatKey: 1},
	}
}
