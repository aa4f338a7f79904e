package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ignite/greeting-api/internal/config"
	"github.com/ignite/greeting-api/internal/pkg/httputil"
)

// Route binds an HTTP method and a chi path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Routes returns the route table. chi resolves static segments before
// parameters, so "/" wins over "/{data}" for the bare root path.
func Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/", Handler: HandleRoot},
		{Method: http.MethodGet, Pattern: "/{data}", Handler: HandleEcho},
	}
}

// SetupRoutes builds the router: middleware first, then every entry of
// the route table.
func SetupRoutes(routes []Route, corsCfg config.CORSConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(RedirectSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         corsCfg.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.NotFound(w, "not found")
	})
	allow := strings.Join(allowedMethods(routes), ", ")
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", allow)
		httputil.MethodNotAllowed(w, "method not allowed")
	})

	for _, rt := range routes {
		r.Method(rt.Method, rt.Pattern, rt.Handler)
	}

	return r
}

// allowedMethods lists the distinct methods of the table in declaration
// order. Every pattern shares the same method set, so one Allow value fits
// every 405.
func allowedMethods(routes []Route) []string {
	var methods []string
	seen := make(map[string]bool)
	for _, rt := range routes {
		if !seen[rt.Method] {
			seen[rt.Method] = true
			methods = append(methods, rt.Method)
		}
	}
	return methods
}
