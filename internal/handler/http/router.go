package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/handler/http/middleware"
	"github.com/crewops/crewops-backend-go/internal/pkg/jwt"
	"github.com/crewops/crewops-backend-go/internal/pkg/rolecache"
)

func NewRouter(
	JWTService jwt.Service,
	timesheetHandler TimesheetHandler,
	workerHandler WorkerHandler,
	roleCache *rolecache.Cache,
	workerRepo worker.WorkerRepository,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Get("/{workerID}", workerHandler.Get)

				// Staff / lead labor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTimesheetManager(roleCache, workerRepo))
					r.Post("/", workerHandler.Create)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.ListEntries)
				r.Get("/dashboard", timesheetHandler.GetWeeklyDashboard)
				r.Get("/workers/{workerID}/weekly", timesheetHandler.GetWorkerWeeklyView)

				// Staff / lead labor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireTimesheetManager(roleCache, workerRepo))
					r.Post("/", timesheetHandler.CreateEntry)
				})
			})
		})
	})
	return r
}
