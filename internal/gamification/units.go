package gamification

import "math"

// KgPerLbs est le facteur de conversion kg -> lbs.
// Les poids sont stockés en kg, la conversion n'a lieu qu'à l'affichage.
const KgPerLbs = 2.20462

// ToDisplay convertit un poids stocké (kg) vers l'unité d'affichage.
func ToDisplay(weightKg float64, unit string) float64 {
	if unit == "lbs" {
		return weightKg * KgPerLbs
	}
	return weightKg
}

// ToStorage convertit un poids saisi dans l'unité d'affichage vers des kg.
func ToStorage(displayWeight float64, unit string) float64 {
	if unit == "lbs" {
		return displayWeight / KgPerLbs
	}
	return displayWeight
}

// RoundDisplay arrondit à l'entier pour les vues en lecture seule.
func RoundDisplay(v float64) float64 {
	return math.Round(v)
}

// EditingDisplay garde une décimale pendant l'édition pour limiter
// la dérive des allers-retours kg <-> lbs.
func EditingDisplay(v float64) float64 {
	return math.Round(v*10) / 10
}
