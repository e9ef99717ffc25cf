package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"weeks-worth/internal/account"
	"weeks-worth/internal/auth"
	"weeks-worth/internal/group"
	"weeks-worth/internal/metrics"
	"weeks-worth/internal/recipe"
)

// Importer imports a recipe from a web page.
type Importer interface {
	ImportURL(ctx context.Context, url string) (*recipe.Recipe, error)
}

// Messenger forwards a user's message to the administrator. It reports
// false, not an error, when delivery is not configured.
type Messenger interface {
	MessageMe(ctx context.Context, fromEmail, message string) (bool, error)
}

// Deps holds everything the HTTP layer calls into. Importer is nil when
// recipe import is not configured; every other field is required.
type Deps struct {
	Accounts *account.Service
	Recipes  *recipe.Repository
	Groups   *group.Service
	Importer Importer
	Messages Messenger
	Metrics  *metrics.Store
	Issuer   *auth.Issuer
	DataDir  string
	Logger   *zap.Logger
}

// Server serves the JSON API.
type Server struct {
	deps   Deps
	logger *zap.Logger
}

// New creates a Server.
func New(deps Deps) *Server {
	return &Server{deps: deps, logger: deps.Logger}
}

// Handler returns the root handler with authentication and request logging
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/token", s.handleToken)

	mux.HandleFunc("GET /recipes", s.handleListRecipes)
	mux.HandleFunc("GET /recipes/urls", s.handleRecipeURLs)
	mux.HandleFunc("GET /recipe", s.handleGetRecipe)
	mux.HandleFunc("POST /recipes", s.authed(s.handleCreateRecipe))
	mux.HandleFunc("POST /recipes/import", s.authed(s.handleImportRecipe))
	mux.HandleFunc("PATCH /recipes/{id}", s.authed(s.handleUpdateRecipe))
	mux.HandleFunc("POST /recipes/{id}/steps", s.authed(s.handleAddStep))
	mux.HandleFunc("DELETE /recipe", s.authed(s.handleDeleteRecipe))

	mux.HandleFunc("GET /groups", s.handleListGroups)
	mux.HandleFunc("GET /group", s.authed(s.handleGetGroup))
	mux.HandleFunc("GET /me/groups", s.authed(s.handleMyGroups))
	mux.HandleFunc("POST /groups", s.authed(s.handleCreateGroup))
	mux.HandleFunc("POST /groups/leave", s.authed(s.handleLeaveGroup))
	mux.HandleFunc("PATCH /groups/{id}", s.authed(s.handleUpdateGroup))
	mux.HandleFunc("DELETE /groups/{id}", s.authed(s.handleDeleteGroup))
	mux.HandleFunc("POST /groups/{id}/requests", s.authed(s.handleRequestAccess))
	mux.HandleFunc("DELETE /groups/{id}/requests", s.authed(s.handleCancelRequest))
	mux.HandleFunc("POST /groups/{id}/invitations", s.authed(s.handleInvite))

	mux.HandleFunc("GET /me", s.authed(s.handleMe))
	mux.HandleFunc("PATCH /me", s.authed(s.handleUpdateMe))
	mux.HandleFunc("GET /individual", s.authed(s.handleGetIndividual))
	mux.HandleFunc("GET /individuals", s.authed(s.handleAllIndividuals))

	mux.HandleFunc("POST /messages", s.authed(s.handleMessageMe))

	return s.logRequests(auth.Middleware(s.deps.Issuer)(mux))
}

// authedHandler is a handler that runs for a known individual.
type authedHandler func(w http.ResponseWriter, r *http.Request, me *account.Individual)

// authed resolves the caller's individual or answers 401.
func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.FromContext(r.Context())
		if !ok {
			s.writeError(w, r, errLoginRequired)
			return
		}
		me, err := s.deps.Accounts.IndividualForUser(r.Context(), claims.UserID())
		if err != nil {
			// A valid token for a user that no longer exists.
			s.writeError(w, r, errLoginRequired)
			return
		}
		h(w, r, me)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
