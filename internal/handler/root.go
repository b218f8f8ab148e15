package handler

import (
	"net/http"

	"github.com/ryankirkland/99grind/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "99Grind API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
				{"method": "POST", "path": "/auth/signup", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/register", "description": "Inscription utilisateur (alias)"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users/{id}", "description": "Récupérer un profil par ID"},
				{"method": "PUT", "path": "/users/{id}", "description": "Mettre à jour le profil (username, weightUnit)"},
				{"method": "GET", "path": "/users/{id}/avatar", "description": "Avatar SVG dérivé des stats"},
				{"method": "POST", "path": "/users/{id}/picture", "description": "Upload photo de profil"},
				{"method": "GET", "path": "/users/{userId}/streaks", "description": "Séries de jours et de semaines"},
			},
			"exercises": []map[string]string{
				{"method": "GET", "path": "/exercises", "description": "Bibliothèque d'exercices (param: search)"},
				{"method": "POST", "path": "/exercises", "description": "Créer un exercice personnalisé"},
				{"method": "GET", "path": "/exercises/{id}", "description": "Récupérer un exercice par ID"},
				{"method": "GET", "path": "/exercises/{id}/history", "description": "Historique par jour pour l'utilisateur courant"},
			},
			"workouts": []map[string]string{
				{"method": "GET", "path": "/workouts", "description": "Récupérer les workouts (params: limit, offset)"},
				{"method": "GET", "path": "/workouts/{id}", "description": "Récupérer un workout avec ses logs"},
				{"method": "POST", "path": "/workouts", "description": "Enregistrer un workout (XP + stats)"},
				{"method": "PATCH", "path": "/workouts/{id}", "description": "Ré-enregistrer un workout"},
				{"method": "POST", "path": "/workouts/rest-day", "description": "Marquer la journée comme Rest Day"},
				{"method": "DELETE", "path": "/workouts/rest-day", "description": "Annuler le Rest Day du jour"},
			},
			"templates": []map[string]string{
				{"method": "GET", "path": "/templates", "description": "Templates de l'utilisateur courant"},
				{"method": "POST", "path": "/templates", "description": "Créer un template"},
				{"method": "DELETE", "path": "/templates/{id}", "description": "Supprimer un template"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement XP (params: period, limit)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour 99Grind - Suivi d'entraînement gamifié",
		},
	}

	utils.Success(w, routes)
}
