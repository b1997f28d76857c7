/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the form client
  5. RateLimit:  Per-IP token bucket on /api (see ratelimit.go)

ROUTES:
  POST /api/calculate-mortgage   The calculation endpoint
  GET  /api                      Welcome message
  GET  /*                        Static form client (web/static), with a
                                 plain welcome page as fallback

SECURITY NOTE:
  No authentication; the service is a public calculator by design.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// RouterOptions carries the transport-level knobs from configuration.
type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string
	RateLimit      rate.Limit
	RateBurst      int
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(RateLimit(opts.RateLimit, opts.RateBurst))
		}
		r.Get("/", h.Welcome)
		r.Post("/calculate-mortgage", h.CalculateMortgage)
	})

	// Serve the form client when the static directory exists, otherwise a
	// minimal landing page.
	staticDir := opts.StaticDir
	if staticDir == "" {
		staticDir = "./web/static"
	}
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		// Try relative to executable
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "static")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", fileServer.ServeHTTP)
	} else {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>BC Mortgage Calculator</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>BC Mortgage Calculator API</h1>
<p>The form client is not present. POST to <code>/api/calculate-mortgage</code> directly:</p>
<pre>{"propertyPrice": 500000, "downPayment": 50000, "annualInterestRate": 3,
 "amortizationPeriod": 25, "paymentSchedule": "monthly"}</pre>
</body>
</html>`))
		})
	}

	return r
}

// requestID extracts the chi request ID for log correlation.
func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
