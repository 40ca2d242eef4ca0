package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/davidmokos/coolify/internal/engine/delivery"
)

type HealthHandler struct {
	db    *sql.DB
	queue *delivery.Queue
}

func NewHealthHandler(db *sql.DB, queue *delivery.Queue) *HealthHandler {
	return &HealthHandler{db: db, queue: queue}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := h.db.Ping(); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
	} else {
		checks["database"] = "healthy"
	}

	checks["delivery_queue"] = "healthy"

	status := "healthy"
	for _, check := range checks {
		if len(check) >= 9 && check[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	response := struct {
		Status     string            `json:"status"`
		Timestamp  int64             `json:"timestamp"`
		QueueDepth int               `json:"queue_depth"`
		Checks     map[string]string `json:"checks"`
	}{
		Status:     status,
		Timestamp:  time.Now().Unix(),
		QueueDepth: h.queue.Depth(),
		Checks:     checks,
	}

	statusCode := http.StatusOK
	if status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
