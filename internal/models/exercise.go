package model

import "time"

// Types d'exercices connus. Le type alimente les stats du profil
// (clé = type en minuscules), un type inconnu retombe sur "General".
const (
	ExerciseTypeStrength    = "Strength"
	ExerciseTypeCardio      = "Cardio"
	ExerciseTypeFlexibility = "Flexibility"
	ExerciseTypeMindfulness = "Mindfulness"
	ExerciseTypeGeneral     = "General"
)

// Exercise est une entrée du catalogue d'exercices.
// Immutable après création (hors vérification par un admin).
type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TargetMuscle string    `json:"targetMuscle"`
	Type         string    `json:"type"`
	IsVerified   bool      `json:"isVerified"`
	CreatedBy    *string   `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ExerciseDayStats agrège les logs d'un exercice pour un jour donné.
// Les poids sont exprimés dans l'unité d'affichage de l'utilisateur.
type ExerciseDayStats struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Sets      int     `json:"sets"`
	TotalReps int     `json:"totalReps"`
	AvgReps   int     `json:"avgReps"`
	MaxWeight float64 `json:"maxWeight"`
	AvgWeight float64 `json:"avgWeight"`
}

// ExerciseHistory est l'historique par jour d'un exercice pour un utilisateur.
type ExerciseHistory struct {
	ExerciseID string             `json:"exerciseId"`
	Unit       string             `json:"unit"`
	Days       []ExerciseDayStats `json:"days"`
}
