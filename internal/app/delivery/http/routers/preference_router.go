package routers

import (
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPreferenceRoutes(router chi.Router, middlewares *middlewares.Middlewares, preferenceController *controllers.PreferenceController) {
	router.With(middlewares.Authenticate).Put("/language", preferenceController.SetLanguage)
	router.With(middlewares.Authenticate).Put("/theme", preferenceController.SetTheme)
}
