package routers

import (
	"fmt"
	"net/http"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	navigationController *controllers.NavigationController,
	preferenceController *controllers.PreferenceController,
	entityController *controllers.EntityController,
	verificationController *controllers.VerificationController,
	uploadController *controllers.UploadController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusNotFound)
		json.NewEncoder(w).Encode(responses.ResponseDTO{
			Success: false,
			Message: "resource not found",
		})
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, middlewares, navigationController)
			})

			r.Route("/preferences", func(r chi.Router) {
				attachPreferenceRoutes(r, middlewares, preferenceController)
			})

			r.Route("/uploads", func(r chi.Router) {
				attachUploadRoutes(r, middlewares, uploadController)
			})

			attachEntityRoutes(r, middlewares, entityController, verificationController)
		})
	})
}
