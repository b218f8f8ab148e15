package model

import (
	"time"
)

// WeightUnit est l'unité d'affichage choisie par l'utilisateur.
// Les poids sont toujours stockés en kilogrammes.
const (
	WeightUnitKg  = "kg"
	WeightUnitLbs = "lbs"
)

// UserProfile représente un utilisateur et son état de progression cumulé.
// CurrentXP, Level et Stats sont mis à jour uniquement par les flows de
// sauvegarde/édition de workout.
type UserProfile struct {
	ID         string         `json:"id,omitempty"`
	Username   string         `json:"username"`
	Email      string         `json:"email"`
	Picture    string         `json:"picture,omitempty"`
	CurrentXP  int            `json:"currentXp"`
	Level      int            `json:"level"`
	Stats      map[string]int `json:"stats"`
	WeightUnit string         `json:"weightUnit"`
	Badges     []string       `json:"badges"`
	JoinDate   time.Time      `json:"joinDate,omitempty"`
	CreatedAt  time.Time      `json:"createdAt,omitempty"`
	UpdatedAt  time.Time      `json:"updatedAt,omitempty"`
	DeletedAt  *time.Time     `json:"deletedAt,omitempty"`
}
