package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/handler"
	"github.com/ryankirkland/99grind/internal/middleware"
	"github.com/ryankirkland/99grind/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/users/{id}/avatar", handler.GetAvatar).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}/picture", handler.UploadPicture).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/users/{userId}/streaks", handler.GetStreaks).Methods(http.MethodGet)

	// Exercises
	r.HandleFunc("/exercises", handler.GetExercises).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/exercises", handler.CreateExercise).Methods(http.MethodPost)
	r.HandleFunc("/exercises/{id}", handler.GetExercise).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/exercises/{id}/history", handler.GetExerciseHistory).Methods(http.MethodGet)

	// Workouts
	authenticatedRoutes.HandleFunc("/workouts", handler.GetWorkouts).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts", handler.SaveWorkout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/rest-day", handler.LogRestDay).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/rest-day", handler.UndoRestDay).Methods(http.MethodDelete)
	authenticatedRoutes.HandleFunc("/workouts/{id}", handler.GetWorkout).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/{id}", handler.UpdateWorkout).Methods(http.MethodPatch)

	// Templates
	authenticatedRoutes.HandleFunc("/templates", handler.GetTemplates).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/templates", handler.CreateTemplate).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/templates/{id}", handler.DeleteTemplate).Methods(http.MethodDelete)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
