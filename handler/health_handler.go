package handler

import (
	"encoding/json"
	"go-shop-api/model"
	"net/http"
	"time"
)

// Ping godoc
// @Summary      Show the status of the service
// @Description  get the status of the service
// @Tags         health
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Router       /api/users/ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.HealthStatus{
		Service:   "go-shop-api",
		Status:    "UP",
		Timestamp: time.Now().UTC(),
	})
}
