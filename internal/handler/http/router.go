package http

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-portal/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-portal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	Version        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
	// LogOutput defaults to stdout
	LogOutput io.Writer
}

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Report     ReportHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-portal"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListActive)
			r.Get("/crud", h.Employee.ListAll)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.Get)
				r.Get("/monthly-report", h.Employee.MonthlyReport)
				r.Get("/monthly-report/export", h.Employee.ExportMonthlyReport)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAll)
			r.Get("/range", h.Attendance.ListRange)
			r.Route("/crud", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Create)
				r.Get("/{id}", h.Attendance.Get)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/day", h.Report.DayView)
			r.Get("/employees/{id}", h.Report.EmployeeView)
		})
	})
	return r
}
