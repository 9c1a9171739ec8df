package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	systemHandler SystemHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-api"),
		slog.String("version", "v1.0.0"),
	)

	// No authentication; all origins, methods, and headers allowed.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", systemHandler.Root)
	r.Get("/test", systemHandler.TestDatabase)

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", employeeHandler.Create)
		r.Get("/", employeeHandler.List)
		r.Delete("/{id}", employeeHandler.Delete)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Post("/mark", attendanceHandler.Mark)
		r.Get("/daily", attendanceHandler.Daily)
		r.Get("/summary/{employee_id}", attendanceHandler.Summary)
	})

	return r
}
