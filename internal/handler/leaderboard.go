package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ryankirkland/99grind/internal/database"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/utils"
)

// GetLeaderboard récupère le classement XP.
// Sur "all-time" le score est l'XP cumulée du profil, sinon la somme
// des snapshots d'XP des workouts de la période.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := query.Get("period") // daily, weekly, monthly, all-time
	if period == "" {
		period = "all-time"
	}

	limit := 50
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	now := time.Now()
	var startDate time.Time
	switch period {
	case "daily":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "weekly":
		startDate = now.AddDate(0, 0, -7)
	case "monthly":
		startDate = now.AddDate(0, 0, -30)
	default:
		period = "all-time"
	}

	var sqlQuery string
	var args []interface{}

	if period == "all-time" {
		sqlQuery = `
			SELECT u.id, u.username, u.picture, u.level, u.current_xp,
				ROW_NUMBER() OVER (ORDER BY u.current_xp DESC) as rank
			FROM users u
			WHERE u.deleted_at IS NULL
			ORDER BY rank
			LIMIT $1
		`
		args = []interface{}{limit}
	} else {
		sqlQuery = `
			WITH user_scores AS (
				SELECT w.user_id, SUM(w.total_xp_earned) as score
				FROM workouts w
				WHERE w.started_at >= $1
				GROUP BY w.user_id
			)
			SELECT u.id, u.username, u.picture, u.level, us.score,
				ROW_NUMBER() OVER (ORDER BY us.score DESC) as rank
			FROM user_scores us
			INNER JOIN users u ON us.user_id = u.id
			WHERE u.deleted_at IS NULL
			ORDER BY rank
			LIMIT $2
		`
		args = []interface{}{startDate, limit}
	}

	rows, err := database.DB.Query(r.Context(), sqlQuery, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}
	defer rows.Close()

	leaderboard := []model.LeaderboardEntry{}
	for rows.Next() {
		var entry model.LeaderboardEntry
		var picture *string
		if err := rows.Scan(
			&entry.UserID, &entry.Username, &picture,
			&entry.Level, &entry.Score, &entry.Rank,
		); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan leaderboard row", err)
			return
		}
		if picture != nil {
			entry.Picture = *picture
		}
		leaderboard = append(leaderboard, entry)
	}

	utils.Success(w, map[string]interface{}{
		"period":      period,
		"leaderboard": leaderboard,
	})
}
