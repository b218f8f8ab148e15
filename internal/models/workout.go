package model

import "time"

// WorkoutTypeRest marque une journée de repos ("Rest Day").
// Un seul workout de ce type est autorisé par jour calendaire.
const WorkoutTypeRest = "Rest"

// RestDayName est le nom fixe du workout inséré par logRestDay.
const RestDayName = "Rest Day"

// Workout est une session terminée (ou un marqueur Rest Day).
// TotalXPEarned est un snapshot de l'XP attribuée au moment du
// dernier enregistrement.
type Workout struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	StartedAt     time.Time    `json:"startedAt"`
	EndedAt       *time.Time   `json:"endedAt,omitempty"`
	TotalXPEarned int          `json:"totalXpEarned"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Logs          []WorkoutLog `json:"logs,omitempty"`
}

// WorkoutLog est une ligne par série effectuée (modèle granulaire:
// Sets vaut toujours 1, une ligne = une série).
type WorkoutLog struct {
	ID           int64   `json:"id"`
	WorkoutID    string  `json:"workoutId"`
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName,omitempty"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"` // toujours en kg
	// DisplayWeight est le poids dans l'unité du profil, arrondi à
	// la précision d'édition. Rempli à la lecture uniquement.
	DisplayWeight float64 `json:"displayWeight,omitempty"`
}

// WorkoutSetInput est une série soumise par le client (poids déjà en kg).
type WorkoutSetInput struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutExerciseInput regroupe les séries d'un exercice d'un workout soumis.
type WorkoutExerciseInput struct {
	ExerciseID string            `json:"exerciseId"`
	Sets       []WorkoutSetInput `json:"sets"`
}

// WorkoutInput est le payload de saveWorkout / updateWorkout.
type WorkoutInput struct {
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Exercises []WorkoutExerciseInput `json:"exercises"`
}

// LeaderboardEntry est une ligne du classement XP.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Picture  string `json:"picture,omitempty"`
	Level    int    `json:"level"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}
