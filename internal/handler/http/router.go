package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-entry/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	BasePath       string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.Route(cfg.BasePath, func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Get("/options", employeeHandler.Options)
		// "options" never names a record; answer writes to it like any unknown id.
		r.Put("/options", recordNotFound)
		r.Delete("/options", recordNotFound)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", employeeHandler.GetEmployee)
			r.Put("/", employeeHandler.UpdateEmployee)
			r.Delete("/", employeeHandler.DeleteEmployee)
		})
	})
	return r
}

func recordNotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFound(w, "Employee not found")
}
