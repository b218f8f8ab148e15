package handler

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/ryankirkland/99grind/internal/database"
	"github.com/ryankirkland/99grind/internal/scanner"
	"github.com/ryankirkland/99grind/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	ctx := r.Context()
	var userID, hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&userID, &hashedPassword)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	row := database.DB.QueryRow(ctx,
		`SELECT id, username, email, picture, current_xp, level, stats, weight_unit, badges,
			join_date, created_at, updated_at
		 FROM users WHERE id=$1`,
		userID,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load user", err)
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if payload.Username == "" || payload.Email == "" || len(payload.Password) < 8 {
		utils.ErrorSimple(w, http.StatusBadRequest, "username, email and a password of 8+ characters are required")
		return
	}

	ctx := r.Context()
	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	// Le profil démarre à 0 XP, niveau 1, stats vides, unité kg
	row := database.DB.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash)
		 VALUES($1, $2, $3)
		 RETURNING id, username, email, picture, current_xp, level, stats, weight_unit, badges,
			join_date, created_at, updated_at`,
		payload.Username, payload.Email, string(hashed),
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user (username or email taken?)", err)
		return
	}

	// Auto-login après inscription
	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Register (alias de Signup)
func Register(w http.ResponseWriter, r *http.Request) {
	Signup(w, r)
}
