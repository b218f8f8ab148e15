package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/gamification"
	"github.com/ryankirkland/99grind/internal/middleware"
	model "github.com/ryankirkland/99grind/internal/models"
	"github.com/ryankirkland/99grind/internal/scanner"
	"github.com/ryankirkland/99grind/internal/services"
	"github.com/ryankirkland/99grind/internal/utils"
)

// Cloudinary est injecté au démarrage. Nil si la configuration est absente,
// auquel cas l'upload de photo renvoie 503.
var Cloudinary *services.CloudinaryService

const userProfileColumns = `id, username, email, picture, current_xp, level, stats, weight_unit, badges,
	join_date, created_at, updated_at`

// GetUser récupère le profil public d'un utilisateur
func GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+userProfileColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	utils.Success(w, user)
}

// UpdateUser modifie le nom d'utilisateur et/ou l'unité de poids préférée
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	if !middleware.IsOwner(r, userID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you can only update your own profile")
		return
	}

	var payload struct {
		Username   *string `json:"username"`
		WeightUnit *string `json:"weightUnit"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	username := user.Username
	if payload.Username != nil {
		if *payload.Username == "" {
			utils.ErrorSimple(w, http.StatusBadRequest, "username cannot be empty")
			return
		}
		username = *payload.Username
	}

	weightUnit := user.WeightUnit
	if payload.WeightUnit != nil {
		if *payload.WeightUnit != model.WeightUnitKg && *payload.WeightUnit != model.WeightUnitLbs {
			utils.ErrorSimple(w, http.StatusBadRequest, "weightUnit must be 'kg' or 'lbs'")
			return
		}
		weightUnit = *payload.WeightUnit
	}

	row := database.DB.QueryRow(r.Context(),
		`UPDATE users SET username=$2, weight_unit=$3, updated_at=NOW()
		 WHERE id=$1 AND deleted_at IS NULL
		 RETURNING `+userProfileColumns,
		userID, username, weightUnit,
	)
	updated, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not update profile (username taken?)", err)
		return
	}

	utils.Success(w, updated)
}

// GetAvatar rend l'avatar SVG dérivé des stats et du niveau
func GetAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	var statsRaw []byte
	var level int
	err := database.DB.QueryRow(r.Context(),
		`SELECT stats, level FROM users WHERE id=$1 AND deleted_at IS NULL`,
		userID,
	).Scan(&statsRaw, &level)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found")
		return
	}

	svg := gamification.AvatarSVG(utils.StatsFromJSON(statsRaw), level)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg))
}

// UploadPicture upload la photo de profil vers Cloudinary et enregistre l'URL
func UploadPicture(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	if _, err := middleware.GetUserFromContext(r); err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	if !middleware.IsOwner(r, userID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you can only update your own picture")
		return
	}

	if Cloudinary == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "picture uploads are not configured")
		return
	}

	// 10 Mo max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("picture")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing 'picture' file field")
		return
	}
	defer file.Close()

	url, err := Cloudinary.UploadProfilePicture(r.Context(), file, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload picture", err)
		return
	}

	if _, err := database.DB.Exec(r.Context(),
		`UPDATE users SET picture=$2, updated_at=NOW() WHERE id=$1`,
		userID, url,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save picture URL", err)
		return
	}

	utils.Success(w, map[string]string{"picture": url})
}
