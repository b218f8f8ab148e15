package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/gamification"
	"github.com/ryankirkland/99grind/internal/middleware"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/scanner"
	"github.com/ryankirkland/99grind/internal/utils"
)

const exerciseColumns = `id, name, target_muscle, type, is_verified, created_by, created_at`

// GetExercises liste la bibliothèque d'exercices, avec filtre ?search=
func GetExercises(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	query := `SELECT ` + exerciseColumns + ` FROM exercises ORDER BY name`
	args := []interface{}{}
	if search != "" {
		query = `SELECT ` + exerciseColumns + ` FROM exercises WHERE name ILIKE $1 ORDER BY name`
		args = append(args, "%"+search+"%")
	}

	rows, err := database.DB.Query(r.Context(), query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query exercises", err)
		return
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		ex, err := scanner.ScanExercise(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan exercise row", err)
			return
		}
		exercises = append(exercises, *ex)
	}

	utils.Success(w, exercises)
}

// GetExercise récupère un exercice par son id
func GetExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exerciseID := vars["id"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+exerciseColumns+` FROM exercises WHERE id=$1`,
		exerciseID,
	)
	ex, err := scanner.ScanExercise(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "exercise not found")
		return
	}

	utils.Success(w, ex)
}

// CreateExercise ajoute un exercice personnalisé à la bibliothèque.
// Le nom est unique sans tenir compte de la casse.
func CreateExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var payload struct {
		Name         string `json:"name"`
		TargetMuscle string `json:"targetMuscle"`
		Type         string `json:"type"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "exercise name is required")
		return
	}

	switch payload.Type {
	case "":
		payload.Type = model.ExerciseTypeStrength
	case model.ExerciseTypeStrength, model.ExerciseTypeCardio,
		model.ExerciseTypeFlexibility, model.ExerciseTypeMindfulness,
		model.ExerciseTypeGeneral:
	default:
		utils.ErrorSimple(w, http.StatusBadRequest, "unknown exercise type")
		return
	}

	ctx := r.Context()

	var exists bool
	err = database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM exercises WHERE lower(name)=lower($1))`,
		payload.Name,
	).Scan(&exists)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check exercise name", err)
		return
	}
	if exists {
		utils.ErrorSimple(w, http.StatusConflict, "Exercise already exists")
		return
	}

	row := database.DB.QueryRow(ctx,
		`INSERT INTO exercises(name, target_muscle, type, is_verified, created_by)
		 VALUES($1, $2, $3, false, $4)
		 RETURNING `+exerciseColumns,
		payload.Name, payload.TargetMuscle, payload.Type, user.ID,
	)
	ex, err := scanner.ScanExercise(row)
	if err != nil {
		// L'index unique couvre la course entre le check et l'insert
		utils.Error(w, http.StatusConflict, "Exercise already exists", err)
		return
	}

	utils.Success(w, ex)
}

// GetExerciseHistory agrège les logs de l'utilisateur courant pour un
// exercice, par jour calendaire. Les poids sont convertis dans l'unité
// du profil et arrondis à l'entier.
func GetExerciseHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exerciseID := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT date_trunc('day', w.started_at) AS day,
			COUNT(*) AS sets,
			COALESCE(SUM(wl.reps), 0) AS total_reps,
			COALESCE(ROUND(AVG(wl.reps)), 0)::int AS avg_reps,
			COALESCE(MAX(wl.weight), 0) AS max_weight,
			COALESCE(AVG(wl.weight), 0) AS avg_weight
		 FROM workout_logs wl
		 JOIN workouts w ON w.id = wl.workout_id
		 WHERE w.user_id=$1 AND wl.exercise_id=$2
		 GROUP BY day
		 ORDER BY day`,
		user.ID, exerciseID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query exercise history", err)
		return
	}
	defer rows.Close()

	days := []model.ExerciseDayStats{}
	for rows.Next() {
		var day time.Time
		var stats model.ExerciseDayStats
		err := rows.Scan(&day, &stats.Sets, &stats.TotalReps,
			&stats.AvgReps, &stats.MaxWeight, &stats.AvgWeight)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan history row", err)
			return
		}
		stats.Date = day.Format("2006-01-02")
		stats.MaxWeight = gamification.RoundDisplay(gamification.ToDisplay(stats.MaxWeight, user.WeightUnit))
		stats.AvgWeight = gamification.RoundDisplay(gamification.ToDisplay(stats.AvgWeight, user.WeightUnit))
		days = append(days, stats)
	}
	if err := rows.Err(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read history rows", err)
		return
	}

	utils.Success(w, model.ExerciseHistory{
		ExerciseID: exerciseID,
		Unit:       user.WeightUnit,
		Days:       days,
	})
}
