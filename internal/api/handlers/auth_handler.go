package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/davidmokos/coolify/internal/pkg/errors"
	"github.com/davidmokos/coolify/internal/platform/auth"
	"github.com/davidmokos/coolify/internal/platform/models"
	"github.com/davidmokos/coolify/internal/platform/repositories"
)

type AuthHandler struct {
	userRepo     *repositories.UserRepository
	teamRepo     *repositories.TeamRepository
	settingsRepo *repositories.SettingsRepository
	tokenSvc     *auth.TokenService
}

func NewAuthHandler(userRepo *repositories.UserRepository, teamRepo *repositories.TeamRepository, settingsRepo *repositories.SettingsRepository, tokenSvc *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
		tokenSvc:     tokenSvc,
	}
}

type SignupRequest struct {
	TeamName string `json:"team_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}
	if req.TeamName == "" || req.Email == "" || len(req.Password) < 8 {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "team_name, email and a password of at least 8 characters are required", nil)
		return
	}

	existing, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Database error", nil)
		return
	}
	if existing != nil {
		errors.WriteError(w, http.StatusConflict, errors.ErrCodeConflict, "User already exists", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to hash password", nil)
		return
	}

	team := &models.Team{Name: req.TeamName}
	if err := h.teamRepo.Create(team); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to create team", nil)
		return
	}

	// New teams start with every channel present and disabled.
	if err := h.settingsRepo.EnsureDefaults(team.ID); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to create notification settings", nil)
		return
	}

	user := &models.User{
		TeamID:       team.ID,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.userRepo.Create(user); err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to create user", nil)
		return
	}

	token, err := h.tokenSvc.GenerateAccessToken(user.ID, team.ID, user.Email)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to issue token", nil)
		return
	}

	user.Team = team
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AuthResponse{User: user, AccessToken: token})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "Invalid request body", nil)
		return
	}

	user, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Database error", nil)
		return
	}
	if user == nil {
		errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Invalid credentials", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.tokenSvc.GenerateAccessToken(user.ID, user.TeamID, user.Email)
	if err != nil {
		errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to issue token", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AuthResponse{User: user, AccessToken: token})
}
