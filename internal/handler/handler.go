package handler

import (
	"net/http"

	"github.com/ryankirkland/99grind/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
