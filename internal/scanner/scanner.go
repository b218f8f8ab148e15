package scanner

import (
	"database/sql"

	"github.com/lib/pq"

	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/utils"
)

// RowScanner est l'interface commune à pgx.Row et pgx.Rows.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Attend les colonnes: id, username, email, picture, current_xp, level,
// stats (jsonb), weight_unit, badges (text[]), join_date, created_at, updated_at
func ScanUserProfile(scanner RowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var picture sql.NullString
	var statsRaw []byte

	err := scanner.Scan(
		&user.ID, &user.Username, &user.Email, &picture,
		&user.CurrentXP, &user.Level, &statsRaw, &user.WeightUnit,
		pq.Array(&user.Badges),
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Picture = utils.NullStringToString(picture)
	user.Stats = utils.StatsFromJSON(statsRaw)
	if user.Badges == nil {
		user.Badges = []string{}
	}

	return &user, nil
}

// ScanExercise scanne une ligne SQL vers un Exercise
func ScanExercise(scanner RowScanner) (*model.Exercise, error) {
	var ex model.Exercise
	var createdBy sql.NullString

	err := scanner.Scan(
		&ex.ID, &ex.Name, &ex.TargetMuscle, &ex.Type,
		&ex.IsVerified, &createdBy, &ex.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ex.CreatedBy = utils.NullStringToPointer(createdBy)

	return &ex, nil
}

// ScanWorkout scanne une ligne SQL vers un Workout (sans ses logs)
func ScanWorkout(scanner RowScanner) (*model.Workout, error) {
	var w model.Workout
	var endedAt sql.NullTime

	err := scanner.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Type,
		&w.StartedAt, &endedAt, &w.TotalXPEarned,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.EndedAt = utils.NullTimeToPointer(endedAt)

	return &w, nil
}

// ScanWorkoutLog scanne une ligne SQL vers un WorkoutLog
// (avec le nom de l'exercice joint)
func ScanWorkoutLog(scanner RowScanner) (*model.WorkoutLog, error) {
	var log model.WorkoutLog

	err := scanner.Scan(
		&log.ID, &log.WorkoutID, &log.ExerciseID, &log.ExerciseName,
		&log.Sets, &log.Reps, &log.Weight,
	)
	if err != nil {
		return nil, err
	}

	return &log, nil
}

// ScanTemplate scanne une ligne SQL vers un WorkoutTemplate (sans exercices)
func ScanTemplate(scanner RowScanner) (*model.WorkoutTemplate, error) {
	var t model.WorkoutTemplate

	err := scanner.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ScanTemplateExercise scanne une entrée ordonnée d'un template
func ScanTemplateExercise(scanner RowScanner) (*model.TemplateExercise, error) {
	var te model.TemplateExercise

	err := scanner.Scan(
		&te.ID, &te.TemplateID, &te.ExerciseID, &te.ExerciseName,
		&te.Position, &te.TargetSets, &te.TargetReps,
	)
	if err != nil {
		return nil, err
	}

	return &te, nil
}
