package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/gamification"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/utils"
)

// GetStreaks calcule les séries de jours et de semaines consécutifs.
// Un Rest Day compte comme jour qualifiant.
func GetStreaks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	rows, err := database.DB.Query(r.Context(),
		`SELECT started_at, type FROM workouts
		 WHERE user_id=$1
		 ORDER BY started_at DESC`,
		userID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query workouts", err)
		return
	}
	defer rows.Close()

	now := time.Now()
	dates := []time.Time{}
	restDayToday := false

	for rows.Next() {
		var startedAt time.Time
		var workoutType string
		if err := rows.Scan(&startedAt, &workoutType); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan workout row", err)
			return
		}
		startedAt = startedAt.In(now.Location())
		dates = append(dates, startedAt)
		if workoutType == model.WorkoutTypeRest && gamification.SameDay(startedAt, now) {
			restDayToday = true
		}
	}
	if err := rows.Err(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not read workout rows", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"dayStreak":      gamification.DayStreak(dates, now),
		"weekStreak":     gamification.WeekStreak(dates, now),
		"workedOutToday": gamification.WorkedOutOn(dates, now),
		"restDayToday":   restDayToday,
	})
}
