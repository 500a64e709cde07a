// Package stub is a local stand-in for the remote calorie-tracker API:
// same endpoints, same envelope, same derived-total semantics. It backs
// local development (cmd/caltrack-stub) and the end-to-end tests.
package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
}

func NewRouter(db *gorm.DB, jwtSvc *JWT, log *zap.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: opts.CORSAllowCredentials,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &authHandler{db: db, jwt: jwtSvc, log: log}
	uh := &userHandler{db: db}
	fh := &foodHandler{db: db}
	lh := &logHandler{db: db}
	wh := &weightHandler{db: db}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.register)
		r.Post("/auth/login", ah.login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(jwtSvc))

			r.Get("/auth/me", uh.profile)

			r.Get("/users/profile", uh.profile)
			r.Put("/users/profile", uh.updateProfile)
			r.Get("/users/calculate-tdee", uh.calculateTDEE)

			r.Get("/foods", fh.list)
			r.Post("/foods", fh.create)
			r.Get("/foods/{id}", fh.get)
			r.Put("/foods/{id}", fh.update)
			r.Delete("/foods/{id}", fh.delete)

			r.Get("/logs/daily/{date}", lh.daily)
			r.Post("/logs", lh.create)
			r.Put("/logs/{id}", lh.update)
			r.Delete("/logs/{id}", lh.delete)

			r.Get("/weight", wh.list)
			r.Get("/weight/latest", wh.latest)
			r.Get("/weight/trend/{days}", wh.trend)
			r.Post("/weight", wh.create)
			r.Put("/weight/{id}", wh.update)
			r.Delete("/weight/{id}", wh.delete)
		})
	})

	return r
}
