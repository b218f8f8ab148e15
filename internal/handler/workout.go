package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/gamification"
	"github.com/ryankirkland/99grind/internal/middleware"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/scanner"
	"github.com/ryankirkland/99grind/internal/utils"
)

// ErrAlreadyLoggedToday est le message renvoyé quand un Rest Day existe
// déjà pour le jour courant
const ErrAlreadyLoggedToday = "You've already worked hard today!"

// fetchExerciseTypes récupère le type de chaque exercice référencé
func fetchExerciseTypes(ctx context.Context, exerciseIDs []string) (map[string]string, error) {
	typeByExercise := make(map[string]string, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return typeByExercise, nil
	}

	rows, err := database.DB.Query(ctx,
		`SELECT id, type FROM exercises WHERE id = ANY($1)`,
		exerciseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, exType string
		if err := rows.Scan(&id, &exType); err != nil {
			return nil, err
		}
		typeByExercise[id] = exType
	}

	return typeByExercise, rows.Err()
}

// applyEffortToProfile applique (ou annule) une contribution sur les
// compteurs cumulés du profil: stats, XP, niveau dérivé, badges de palier.
func applyEffortToProfile(ctx context.Context, userID string, effort gamification.Effort, revert bool) error {
	var statsRaw []byte
	var currentXP, level int

	err := database.DB.QueryRow(ctx,
		`SELECT stats, current_xp, level FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	).Scan(&statsRaw, &currentXP, &level)
	if err != nil {
		return err
	}

	stats := utils.StatsFromJSON(statsRaw)

	var newStats map[string]int
	var newXP, newLevel int
	if revert {
		newStats, newXP, newLevel = gamification.RevertEffort(stats, currentXP, effort)
	} else {
		newStats, newXP, newLevel = gamification.ApplyEffort(stats, currentXP, effort)
	}

	earned := gamification.NewBadges(level, newLevel, nil)

	_, err = database.DB.Exec(ctx,
		`UPDATE users
		 SET stats=$2, current_xp=$3, level=$4,
			badges=ARRAY(SELECT DISTINCT unnest(badges || COALESCE($5, '{}')::text[])),
			updated_at=NOW()
		 WHERE id=$1`,
		userID, utils.StatsToJSON(newStats), newXP, newLevel, earned,
	)
	return err
}

// completedExercises filtre les exercices sans série complétée
func completedExercises(input []model.WorkoutExerciseInput) []model.WorkoutExerciseInput {
	kept := make([]model.WorkoutExerciseInput, 0, len(input))
	for _, ex := range input {
		if len(ex.Sets) > 0 {
			kept = append(kept, ex)
		}
	}
	return kept
}

func exerciseIDs(input []model.WorkoutExerciseInput) []string {
	ids := make([]string, 0, len(input))
	for _, ex := range input {
		ids = append(ids, ex.ExerciseID)
	}
	return ids
}

// insertWorkoutLogs insère une ligne par série (modèle granulaire, sets=1).
// Un échec est loggé mais n'annule pas le workout déjà inséré.
func insertWorkoutLogs(ctx context.Context, workoutID string, input []model.WorkoutExerciseInput) {
	for _, ex := range input {
		for _, set := range ex.Sets {
			_, err := database.DB.Exec(ctx,
				`INSERT INTO workout_logs(workout_id, exercise_id, sets, reps, weight)
				 VALUES($1, $2, 1, $3, $4)`,
				workoutID, ex.ExerciseID, set.Reps, set.Weight,
			)
			if err != nil {
				utils.LogError("could not insert workout log (workout %s, exercise %s): %v",
					workoutID, ex.ExerciseID, err)
				return
			}
		}
	}
}

// SaveWorkout enregistre un nouveau workout et crédite XP + stats au profil
func SaveWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var input model.WorkoutInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	exs := completedExercises(input.Exercises)
	if len(exs) == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "workout has no completed sets")
		return
	}

	if input.Name == "" {
		input.Name = "Untitled Workout"
	}
	if input.Type == "" {
		input.Type = model.ExerciseTypeGeneral
	}

	ctx := r.Context()

	typeByExercise, typesErr := fetchExerciseTypes(ctx, exerciseIDs(exs))
	effort := gamification.WorkoutEffort(exs, typeByExercise)
	if typesErr != nil {
		// Métadonnées indisponibles: l'XP par série reste due (type par
		// défaut) mais aucun bucket de stats n'est crédité
		utils.LogError("could not fetch exercise types: %v", typesErr)
		effort.Stats = map[string]int{}
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO workouts(user_id, name, type, total_xp_earned, ended_at)
		 VALUES($1, $2, $3, $4, NOW())
		 RETURNING id, user_id, name, type, started_at, ended_at, total_xp_earned, created_at, updated_at`,
		user.ID, input.Name, input.Type, effort.XP,
	)
	workout, err := scanner.ScanWorkout(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save workout", err)
		return
	}

	insertWorkoutLogs(ctx, workout.ID, exs)

	if err := applyEffortToProfile(ctx, user.ID, effort, false); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile", err)
		return
	}

	utils.Success(w, workout)
}

// UpdateWorkout ré-enregistre un workout existant: l'ancienne contribution
// (reconstruite depuis les logs) est annulée avant d'appliquer la nouvelle,
// pour que l'édition soit équivalente à un delete + re-insert.
func UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workoutID := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var input model.WorkoutInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	exs := completedExercises(input.Exercises)
	if len(exs) == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "workout has no completed sets")
		return
	}

	ctx := r.Context()

	var ownerID, workoutType string
	err = database.DB.QueryRow(ctx,
		`SELECT user_id, type FROM workouts WHERE id=$1`,
		workoutID,
	).Scan(&ownerID, &workoutType)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "workout not found")
		return
	}

	if ownerID != user.ID {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to update this workout")
		return
	}

	if workoutType == model.WorkoutTypeRest {
		utils.ErrorSimple(w, http.StatusBadRequest, "a rest day cannot be edited")
		return
	}

	// Reconstruire l'ancienne contribution depuis les logs granulaires
	oldSets := make(map[string]int)
	rows, err := database.DB.Query(ctx,
		`SELECT exercise_id, COALESCE(SUM(sets), 0)
		 FROM workout_logs WHERE workout_id=$1
		 GROUP BY exercise_id`,
		workoutID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read workout logs", err)
		return
	}
	for rows.Next() {
		var exerciseID string
		var sets int
		if err := rows.Scan(&exerciseID, &sets); err != nil {
			rows.Close()
			utils.Error(w, http.StatusInternalServerError, "could not scan workout log", err)
			return
		}
		oldSets[exerciseID] = sets
	}
	rows.Close()

	ids := exerciseIDs(exs)
	for exerciseID := range oldSets {
		ids = append(ids, exerciseID)
	}
	typeByExercise, err := fetchExerciseTypes(ctx, ids)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch exercise types", err)
		return
	}

	oldEffort := gamification.EffortFromSetCounts(oldSets, typeByExercise)
	newEffort := gamification.WorkoutEffort(exs, typeByExercise)

	// Unité logique atomique: un échec au milieu laisse profil et logs
	// incohérents et est seulement signalé, jamais rejoué
	if err := applyEffortToProfile(ctx, user.ID, oldEffort, true); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not revert previous contribution", err)
		return
	}
	if err := applyEffortToProfile(ctx, user.ID, newEffort, false); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not apply new contribution", err)
		return
	}

	if input.Name == "" {
		input.Name = "Untitled Workout"
	}
	if input.Type == "" {
		input.Type = model.ExerciseTypeGeneral
	}

	row := database.DB.QueryRow(ctx,
		`UPDATE workouts
		 SET name=$2, type=$3, total_xp_earned=$4, updated_at=NOW()
		 WHERE id=$1
		 RETURNING id, user_id, name, type, started_at, ended_at, total_xp_earned, created_at, updated_at`,
		workoutID, input.Name, input.Type, newEffort.XP,
	)
	workout, err := scanner.ScanWorkout(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update workout", err)
		return
	}

	if _, err := database.DB.Exec(ctx,
		`DELETE FROM workout_logs WHERE workout_id=$1`, workoutID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete old workout logs", err)
		return
	}

	insertWorkoutLogs(ctx, workoutID, exs)

	utils.Success(w, workout)
}

// LogRestDay insère le marqueur Rest Day du jour (XP fixe), avec pré-check
// d'unicité sur le jour calendaire courant
func LogRestDay(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	ctx := r.Context()
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var alreadyLogged bool
	err = database.DB.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM workouts
			WHERE user_id=$1 AND started_at >= $2 AND started_at < $3
		)`,
		user.ID, startOfDay, endOfDay,
	).Scan(&alreadyLogged)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check today's workouts", err)
		return
	}

	if alreadyLogged {
		utils.ErrorSimple(w, http.StatusConflict, ErrAlreadyLoggedToday)
		return
	}

	effort := gamification.RestDayEffort()

	row := database.DB.QueryRow(ctx,
		`INSERT INTO workouts(user_id, name, type, total_xp_earned, ended_at)
		 VALUES($1, $2, $3, $4, NOW())
		 RETURNING id, user_id, name, type, started_at, ended_at, total_xp_earned, created_at, updated_at`,
		user.ID, model.RestDayName, model.WorkoutTypeRest, effort.XP,
	)
	workout, err := scanner.ScanWorkout(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not log rest day", err)
		return
	}

	if err := applyEffortToProfile(ctx, user.ID, effort, false); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile", err)
		return
	}

	utils.Success(w, workout)
}

// UndoRestDay supprime le Rest Day du jour et annule sa contribution fixe
func UndoRestDay(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	ctx := r.Context()
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var workoutID string
	err = database.DB.QueryRow(ctx,
		`SELECT id FROM workouts
		 WHERE user_id=$1 AND type=$2 AND started_at >= $3 AND started_at < $4
		 LIMIT 1`,
		user.ID, model.WorkoutTypeRest, startOfDay, endOfDay,
	).Scan(&workoutID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "no rest day logged today")
		return
	}

	if _, err := database.DB.Exec(ctx,
		`DELETE FROM workouts WHERE id=$1`, workoutID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete rest day", err)
		return
	}

	if err := applyEffortToProfile(ctx, user.ID, gamification.RestDayEffort(), true); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile", err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

// GetWorkouts liste les workouts de l'utilisateur courant (plus récents d'abord)
func GetWorkouts(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, name, type, started_at, ended_at, total_xp_earned, created_at, updated_at
		 FROM workouts
		 WHERE user_id=$1
		 ORDER BY started_at DESC
		 LIMIT $2 OFFSET $3`,
		user.ID, limit, offset,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workouts", err)
		return
	}
	defer rows.Close()

	workouts := []model.Workout{}
	for rows.Next() {
		workout, err := scanner.ScanWorkout(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan workout row", err)
			return
		}
		workouts = append(workouts, *workout)
	}

	utils.Success(w, workouts)
}

// GetWorkout récupère un workout avec ses logs. Les poids restent en kg
// (valeur canonique), displayWeight porte la valeur dans l'unité du profil
// avec la précision d'édition (une décimale).
func GetWorkout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workoutID := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`SELECT id, user_id, name, type, started_at, ended_at, total_xp_earned, created_at, updated_at
		 FROM workouts WHERE id=$1`,
		workoutID,
	)
	workout, err := scanner.ScanWorkout(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "workout not found")
		return
	}

	if workout.UserID != user.ID {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to view this workout")
		return
	}

	rows, err := database.DB.Query(ctx,
		`SELECT wl.id, wl.workout_id, wl.exercise_id, e.name, wl.sets, wl.reps, wl.weight
		 FROM workout_logs wl
		 JOIN exercises e ON e.id = wl.exercise_id
		 WHERE wl.workout_id=$1
		 ORDER BY wl.id`,
		workoutID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workout logs", err)
		return
	}
	defer rows.Close()

	logs := []model.WorkoutLog{}
	for rows.Next() {
		log, err := scanner.ScanWorkoutLog(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan workout log row", err)
			return
		}
		log.DisplayWeight = gamification.EditingDisplay(gamification.ToDisplay(log.Weight, user.WeightUnit))
		logs = append(logs, *log)
	}
	workout.Logs = logs

	utils.Success(w, map[string]interface{}{
		"workout": workout,
		"unit":    user.WeightUnit,
	})
}
