package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/middleware"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/scanner"
	"github.com/ryankirkland/99grind/internal/utils"
)

// GetTemplates liste les templates de l'utilisateur avec leurs exercices ordonnés
func GetTemplates(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	ctx := r.Context()

	rows, err := database.DB.Query(ctx,
		`SELECT id, user_id, name, created_at
		 FROM workout_templates
		 WHERE user_id=$1
		 ORDER BY created_at DESC`,
		user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query templates", err)
		return
	}

	templates := []model.WorkoutTemplate{}
	for rows.Next() {
		t, err := scanner.ScanTemplate(rows)
		if err != nil {
			rows.Close()
			utils.Error(w, http.StatusInternalServerError, "could not scan template row", err)
			return
		}
		t.Exercises = []model.TemplateExercise{}
		templates = append(templates, *t)
	}
	rows.Close()

	for i := range templates {
		exRows, err := database.DB.Query(ctx,
			`SELECT te.id, te.template_id, te.exercise_id, e.name, te.position, te.target_sets, te.target_reps
			 FROM workout_template_exercises te
			 JOIN exercises e ON e.id = te.exercise_id
			 WHERE te.template_id=$1
			 ORDER BY te.position`,
			templates[i].ID,
		)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not query template exercises", err)
			return
		}
		for exRows.Next() {
			te, err := scanner.ScanTemplateExercise(exRows)
			if err != nil {
				exRows.Close()
				utils.Error(w, http.StatusInternalServerError, "could not scan template exercise", err)
				return
			}
			templates[i].Exercises = append(templates[i].Exercises, *te)
		}
		exRows.Close()
	}

	utils.Success(w, templates)
}

// CreateTemplate enregistre un nouveau template de workout
func CreateTemplate(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var input model.TemplateInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "template name is required")
		return
	}
	if len(input.Exercises) == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "template needs at least one exercise")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`INSERT INTO workout_templates(user_id, name)
		 VALUES($1, $2)
		 RETURNING id, user_id, name, created_at`,
		user.ID, input.Name,
	)
	template, err := scanner.ScanTemplate(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create template", err)
		return
	}

	template.Exercises = []model.TemplateExercise{}
	for position, ex := range input.Exercises {
		var te model.TemplateExercise
		err := database.DB.QueryRow(ctx,
			`INSERT INTO workout_template_exercises(template_id, exercise_id, position, target_sets, target_reps)
			 VALUES($1, $2, $3, $4, $5)
			 RETURNING id, template_id, exercise_id, position, target_sets, target_reps`,
			template.ID, ex.ExerciseID, position, ex.TargetSets, ex.TargetReps,
		).Scan(&te.ID, &te.TemplateID, &te.ExerciseID, &te.Position, &te.TargetSets, &te.TargetReps)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "could not add exercise to template", err)
			return
		}
		template.Exercises = append(template.Exercises, te)
	}

	utils.Success(w, template)
}

// DeleteTemplate supprime un template (et ses entrées en cascade)
func DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	tag, err := database.DB.Exec(r.Context(),
		`DELETE FROM workout_templates WHERE id=$1 AND user_id=$2`,
		templateID, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete template", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "template not found")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
