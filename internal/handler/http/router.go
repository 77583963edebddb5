package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/middleware"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Leave      LeaveHandler
	Advance    AdvanceHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, frontendURL, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
				r.Post("/change-password", h.User.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me/salary/{month}", h.User.GetMySalary)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Post("/bulk-setup", h.User.BulkSetup)
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
					r.Post("/{id}/reset-password", h.User.ResetPassword)
					r.Post("/{id}/salary", h.User.SetSalary)
					r.Get("/{id}/salary/{month}", h.User.GetSalary)
					r.Get("/{id}/salaries", h.User.ListSalaries)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}", h.Leave.Update)
					r.Patch("/{id}/status", h.Leave.UpdateStatus)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/advance-requests", func(r chi.Router) {
				r.Post("/", h.Advance.Create)
				r.Get("/", h.Advance.List)
				r.Get("/{id}", h.Advance.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}", h.Advance.Update)
					r.Patch("/{id}/status", h.Advance.UpdateStatus)
					r.Delete("/{id}", h.Advance.Delete)
				})
			})

			// Manager only
			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/daily", h.Attendance.Daily)
				r.Get("/monthly", h.Attendance.Monthly)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", h.Payroll.MyProjection)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/summary", h.Payroll.MonthlySummary)
					r.Post("/preview", h.Payroll.PreviewRemaining)
					r.Post("/salary", h.Payroll.SetSalary)
				})
			})
		})
	})
	return r
}
