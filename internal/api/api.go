// Package api exposes the resource handlers over HTTP.
//
// Every operation is listed in one dispatch table of (method, path, role,
// handler). RegisterRoutes wraps each handler with its role check so callers
// without the role get 403 before any repository is touched.
package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jbweber/homelab/campus/internal/auth"
	"github.com/jbweber/homelab/campus/internal/domain"
	"github.com/jbweber/homelab/campus/internal/middleware"
	"github.com/jbweber/homelab/campus/internal/repository"
	"github.com/jbweber/homelab/campus/internal/resource"
)

// Route is one entry of the dispatch table
type Route struct {
	Method  string
	Path    string
	Role    auth.Role
	Handler http.HandlerFunc
}

// API holds the dispatch table for all resources
type API struct {
	logger *slog.Logger
	routes []Route
}

// NewAPI builds handlers for every resource over repos
func NewAPI(repos *repository.Repositories, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	a := &API{logger: logger}

	a.routes = slices.Concat(
		resourceRoutes[domain.HelpRequest](a, "/api/helprequest", "HelpRequest", repos.HelpRequests, helpRequestFromQuery),
		resourceRoutes[domain.MenuItemReview](a, "/api/menuitemreview", "MenuItemReview", repos.MenuItemReviews, menuItemReviewFromQuery),
		resourceRoutes[domain.RecommendationRequest](a, "/api/recommendationrequest", "RecommendationRequest", repos.RecommendationRequests, recommendationRequestFromQuery),
		resourceRoutes[domain.Article](a, "/api/articles", "Article", repos.Articles, articleFromQuery),
		resourceRoutes[domain.DiningCommons](a, "/api/ucsbdiningcommons", "DiningCommons", repos.DiningCommons, diningCommonsFromQuery),
	)
	return a
}

func resourceRoutes[T domain.Entity[T]](a *API, base, kind string, repo repository.Repository[T, int64], decode func(*queryParams) T) []Route {
	e := &endpoints[T]{
		api:     a,
		handler: resource.New[T](kind, repo, a.logger),
		decode:  decode,
	}
	return e.routes(base)
}

// Routes returns a copy of the dispatch table
func (a *API) Routes() []Route {
	return slices.Clone(a.routes)
}

// RegisterRoutes registers the dispatch table, the health check and the
// JSON 404/405 handlers on r.
func (a *API) RegisterRoutes(r chi.Router) {
	for _, route := range a.routes {
		r.With(middleware.RequireRole(route.Role)).Method(route.Method, route.Path, route.Handler)
	}

	r.Get("/healthz", a.healthHandler)
	r.NotFound(a.notFoundHandler)
	r.MethodNotAllowed(a.methodNotAllowedHandler)
}

// NewRouter returns a chi router with the standard middleware stack and all
// routes registered. Bearer tokens are verified with secret.
func NewRouter(a *API, secret string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Authenticate(secret, a.logger))

	a.RegisterRoutes(r)
	return r
}

func (a *API) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusNotFound, ErrorResponse{
		Type:    TypeNotFound,
		Message: "No route for " + r.Method + " " + r.URL.Path,
	})
}

func (a *API) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{
		Type:    TypeMethodNotAllowed,
		Message: "Method " + r.Method + " is not supported for " + r.URL.Path,
	})
}
