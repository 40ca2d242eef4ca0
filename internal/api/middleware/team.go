package middleware

import (
	"context"
	"net/http"

	apiContext "github.com/davidmokos/coolify/internal/api/context"
	"github.com/davidmokos/coolify/internal/pkg/errors"
	"github.com/davidmokos/coolify/internal/platform/auth"
	"github.com/davidmokos/coolify/internal/platform/models"
	"github.com/davidmokos/coolify/internal/platform/repositories"
)

// TeamContext carries the resolved team for the authenticated request.
type TeamContext struct {
	Team *models.Team
}

type TeamMiddleware struct {
	teamRepo *repositories.TeamRepository
}

func NewTeamMiddleware(teamRepo *repositories.TeamRepository) *TeamMiddleware {
	return &TeamMiddleware{teamRepo: teamRepo}
}

func (m *TeamMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(apiContext.Claims).(*auth.Claims)
		if !ok {
			errors.WriteError(w, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "No authentication claims found", nil)
			return
		}

		team, err := m.teamRepo.GetByID(claims.TeamID)
		if err != nil {
			errors.WriteError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "Failed to load team", nil)
			return
		}
		if team == nil {
			errors.WriteError(w, http.StatusForbidden, errors.ErrCodeForbidden, "Team not found", nil)
			return
		}

		ctx := context.WithValue(r.Context(), apiContext.Team, &TeamContext{Team: team})
		next(w, r.WithContext(ctx))
	}
}
