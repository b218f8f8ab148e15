package model

import "time"

// WorkoutTemplate est un plan réutilisable qui pré-remplit le logger.
// Cycle de vie indépendant des workouts.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	Exercises []TemplateExercise `json:"exercises"`
}

// TemplateExercise est une entrée ordonnée d'un template.
type TemplateExercise struct {
	ID           int64  `json:"id"`
	TemplateID   string `json:"templateId,omitempty"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	Position     int    `json:"position"`
	TargetSets   int    `json:"targetSets"`
	TargetReps   int    `json:"targetReps"`
}

// TemplateInput est le payload de création d'un template.
type TemplateInput struct {
	Name      string `json:"name"`
	Exercises []struct {
		ExerciseID string `json:"exerciseId"`
		TargetSets int    `json:"targetSets"`
		TargetReps int    `json:"targetReps"`
	} `json:"exercises"`
}
