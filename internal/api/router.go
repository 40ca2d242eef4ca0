package api

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apiContext "github.com/davidmokos/coolify/internal/api/context"
	"github.com/davidmokos/coolify/internal/api/handlers"
	"github.com/davidmokos/coolify/internal/api/middleware"
)

type Dependencies struct {
	AuthHandler     *handlers.AuthHandler
	SettingsHandler *handlers.SettingsHandler
	EventsHandler   *handlers.EventsHandler
	HealthHandler   *handlers.HealthHandler
	MetricsHandler  *handlers.MetricsHandler
	AuthMiddleware  *middleware.AuthMiddleware
	TeamMiddleware  *middleware.TeamMiddleware
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	router.GET("/api/v1/health", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Serve))

	// Authentication routes
	router.POST("/api/v1/auth/signup", wrap(deps.AuthHandler.Signup))
	router.POST("/api/v1/auth/login", wrap(deps.AuthHandler.Login))

	authMid := deps.AuthMiddleware
	teamMid := deps.TeamMiddleware

	// Notification settings per channel
	router.GET("/api/v1/notifications/:channel",
		chain(deps.SettingsHandler.Get, authMid.Handle, teamMid.Handle))
	router.PATCH("/api/v1/notifications/:channel",
		chain(deps.SettingsHandler.Update, authMid.Handle, teamMid.Handle))
	router.POST("/api/v1/notifications/:channel/test",
		chain(deps.SettingsHandler.Test, authMid.Handle, teamMid.Handle))

	// Deployment pipeline event ingest
	router.POST("/api/v1/events",
		chain(deps.EventsHandler.Create, authMid.Handle, teamMid.Handle))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// Inject params into context
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}
