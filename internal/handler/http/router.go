package http

import (
	"log/slog"
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/handler/http/middleware"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LoginRateLimit func(http.Handler) http.Handler
}

type Handlers struct {
	Auth       AuthHandler
	Station    StationHandler
	Worker     WorkerHandler
	Duty       DutyHandler
	Dashboard  DashboardHandler
	Attendance AttendanceHandler
	DailySales DailySalesHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(middleware.Prometheus)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	loginLimit := cfg.LoginRateLimit
	if loginLimit == nil {
		loginLimit = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register-station", h.Auth.RegisterStation)
			r.With(loginLimit).Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/stations/my", func(r chi.Router) {
				r.Get("/", h.Station.GetMy)
				r.With(middleware.RequireAdmin).Put("/prices", h.Station.UpdatePrices)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/workers", func(r chi.Router) {
					r.Get("/", h.Worker.ListWorkers)
					r.Post("/", h.Worker.CreateWorker)
					r.Patch("/{id}/toggle", h.Worker.ToggleWorker)
				})

				r.Route("/helpers", func(r chi.Router) {
					r.Get("/", h.Worker.ListHelpers)
					r.Post("/", h.Worker.CreateHelper)
					r.Delete("/{id}", h.Worker.DeleteHelper)
				})

				r.Get("/dashboard", h.Dashboard.GetDashboard)
				r.Get("/salary/report", h.Dashboard.GetSalaryReport)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", h.Attendance.List)
					r.Put("/sheet", h.Attendance.SaveSheet)
				})
			})

			r.Route("/duties", func(r chi.Router) {
				r.With(middleware.RequireAdmin).Get("/", h.Duty.List)
				// Workers may read their own duty; the service enforces ownership.
				r.Get("/{id}", h.Duty.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireWorker)
					r.Post("/open", h.Duty.Open)
					r.Post("/{id}/close", h.Duty.Close)
					r.Get("/my", h.Duty.ListMine)
				})
			})

			r.Route("/daily-sales", func(r chi.Router) {
				r.With(middleware.RequireManagerPosition).Post("/", h.DailySales.Create)
				r.With(middleware.RequireAdminOrManager).Get("/", h.DailySales.List)
			})
		})
	})
	return r
}
