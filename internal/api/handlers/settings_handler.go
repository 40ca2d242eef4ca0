package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apiContext "github.com/davidmokos/coolify/internal/api/context"
	"github.com/davidmokos/coolify/internal/api/middleware"
	"github.com/davidmokos/coolify/internal/engine/notifications"
	"github.com/davidmokos/coolify/internal/pkg/errors"
	"github.com/davidmokos/coolify/internal/pkg/validator"
	"github.com/davidmokos/coolify/internal/platform/repositories"
)

// SettingsHandler exposes the per-team notification settings. Rows are
// created lazily with conservative defaults the first time a channel is read.
type SettingsHandler struct {
	settingsRepo *repositories.SettingsRepository
	notifier     *notifications.Notifier
}

func NewSettingsHandler(settingsRepo *repositories.SettingsRepository, notifier *notifications.Notifier) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo, notifier: notifier}
}

var validChannels = map[string]bool{
	"email":    true,
	"discord":  true,
	"telegram": true,
	"slack":    true,
	"pushover": true,
	"webhook":  true,
}

func channelParam(r *http.Request) string {
	params := r.Context().Value(apiContext.Params).(httprouter.Params)
	return params.ByName("channel")
}

func teamFromContext(r *http.Request) *middleware.TeamContext {
	return r.Context().Value(apiContext.Team).(*middleware.TeamContext)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamCtx := teamFromContext(r)
	channel := channelParam(r)

	if !validChannels[channel] {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Unknown notification channel", nil)
		return
	}

	if err := h.settingsRepo.EnsureDefaults(teamCtx.Team.ID); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to initialize settings", nil)
		return
	}

	settings, err := h.settingsRepo.Channel(teamCtx.Team.ID, channel)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// Update merges the request body over the stored row. Enabling the webhook
// channel without a usable URL is rejected.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	teamCtx := teamFromContext(r)
	channel := channelParam(r)
	teamID := teamCtx.Team.ID

	if !validChannels[channel] {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Unknown notification channel", nil)
		return
	}

	if err := h.settingsRepo.EnsureDefaults(teamID); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to initialize settings", nil)
		return
	}

	switch channel {
	case "webhook":
		settings, err := h.settingsRepo.GetWebhook(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if settings.Enabled {
			if err := validator.IsWebhookURL(settings.URL); err != nil {
				errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
				return
			}
		}
		if err := h.settingsRepo.UpdateWebhook(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)

	case "discord":
		settings, err := h.settingsRepo.GetDiscord(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if settings.Enabled {
			if err := validator.IsWebhookURL(settings.WebhookURL); err != nil {
				errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
				return
			}
		}
		if err := h.settingsRepo.UpdateDiscord(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)

	case "slack":
		settings, err := h.settingsRepo.GetSlack(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if settings.Enabled {
			if err := validator.IsWebhookURL(settings.WebhookURL); err != nil {
				errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, err.Error(), nil)
				return
			}
		}
		if err := h.settingsRepo.UpdateSlack(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)

	case "telegram":
		settings, err := h.settingsRepo.GetTelegram(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if err := h.settingsRepo.UpdateTelegram(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)

	case "pushover":
		settings, err := h.settingsRepo.GetPushover(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if err := h.settingsRepo.UpdatePushover(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)

	case "email":
		settings, err := h.settingsRepo.GetEmail(teamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load settings", nil)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
			return
		}
		settings.TeamID = teamID
		if err := h.settingsRepo.UpdateEmail(settings); err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to save settings", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(settings)
	}
}

// Test sends a synchronous test notification over the requested channel.
// Unlike regular dispatch, a failure here is returned to the caller.
func (h *SettingsHandler) Test(w http.ResponseWriter, r *http.Request) {
	teamCtx := teamFromContext(r)
	channel := channelParam(r)

	if !validChannels[channel] {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Unknown notification channel", nil)
		return
	}

	err := h.notifier.SendTest(r.Context(), teamCtx.Team, notifications.Channel(channel))
	if err != nil {
		if notifications.IsNotConfigured(err) {
			errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeNotConfigured, err.Error(), nil)
			return
		}
		errors.WriteError(w, http.StatusBadGateway, errors.ErrCodeSendFailed, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Test notification sent."})
}
