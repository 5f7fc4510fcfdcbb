package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"designarena/internal/http/handlers"
	"designarena/internal/middleware"
)

// Options configures the cross-cutting middleware of the router.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(app.Logger),
		chimw.RealIP,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "X-Locale", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	if app.Metrics != nil {
		r.Use(middleware.Metrics(app.Metrics))
	}

	r.Method(http.MethodGet, "/metrics", app.MetricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Group(func(r chi.Router) {
			if opts.RateLimitPerMin > 0 {
				r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			}
			r.Use(middleware.I18N(opts.DefaultLocale, opts.CountryLookup))

			r.Post("/plan", app.Plan)
			r.Post("/design", app.Design)
			r.Post("/motion", app.Motion)
			r.Post("/publish", app.Publish)
		})
	})

	return r
}
