package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/davidmokos/coolify/internal/engine/notifications"
	"github.com/davidmokos/coolify/internal/pkg/errors"
)

// EventsHandler is the inbound boundary for the deployment pipeline. Accepted
// events are dispatched best-effort; the response never reflects delivery
// outcome.
type EventsHandler struct {
	notifier *notifications.Notifier
}

func NewEventsHandler(notifier *notifications.Notifier) *EventsHandler {
	return &EventsHandler{notifier: notifier}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	teamCtx := teamFromContext(r)

	var ev notifications.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}
	if ev.Name == "" {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "event is required", nil)
		return
	}

	h.notifier.Notify(r.Context(), teamCtx.Team, ev)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
}
