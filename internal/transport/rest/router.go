package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/people-management/internal/auth"
	"github.com/frahmantamala/people-management/internal/department"
	"github.com/frahmantamala/people-management/internal/employee"
	"github.com/frahmantamala/people-management/internal/file"
	"github.com/frahmantamala/people-management/internal/transport/middleware"
	"github.com/frahmantamala/people-management/internal/transport/swagger"
	"github.com/frahmantamala/people-management/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	departmentHandler *department.Handler,
	employeeHandler *employee.Handler,
	fileHandler *file.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))

	// Serve the OpenAPI document and Swagger UI outside the versioned prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Single auth endpoint: action selects register or login.
		r.Post("/auth", authHandler.Authenticate)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/user", userHandler.GetProfile)
			pr.Patch("/user", userHandler.UpdateProfile)

			pr.Post("/file", fileHandler.Upload)

			pr.Route("/department", func(dr chi.Router) {
				dr.Post("/", departmentHandler.Create)
				dr.Get("/", departmentHandler.List)
				dr.Patch("/{departmentId}", departmentHandler.Update)
				dr.Delete("/{departmentId}", departmentHandler.Delete)
			})

			pr.Route("/employee", func(er chi.Router) {
				er.Post("/", employeeHandler.Create)
				er.Get("/", employeeHandler.List)
				er.Patch("/{identityNumber}", employeeHandler.Update)
				er.Delete("/{identityNumber}", employeeHandler.Delete)
			})
		})
	})
}
