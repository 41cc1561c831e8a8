package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-overtime-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the request-logging and CORS settings.
type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, overtimeHandler OvertimeHandler, teamHandler TeamHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/overtime/requests", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.With(middleware.RequirePermission(user.PermissionOvertimeCreate)).Post("/", overtimeHandler.CreateRequest)
					r.With(middleware.RequirePermission(user.PermissionOvertimeViewOwn)).Get("/my", overtimeHandler.GetMyRequests)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.With(middleware.RequirePermission(user.PermissionOvertimeApprove)).Get("/team", overtimeHandler.ListTeamRequests)
					r.With(middleware.RequirePermission(user.PermissionOvertimeExport)).Get("/team/export", overtimeHandler.ExportTeamRequests)
					r.With(middleware.RequirePermission(user.PermissionOvertimeApprove)).Post("/{id}/decision", overtimeHandler.DecideRequest)
				})

				r.Get("/{id}", overtimeHandler.GetRequest)
			})

			r.Route("/team", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.With(middleware.RequirePermission(user.PermissionTeamView)).Get("/members", teamHandler.ListMembers)
				r.With(middleware.RequirePermission(user.PermissionTeamAttendanceView)).Get("/attendance", teamHandler.ListAttendance)
			})
		})
	})
	return r
}
