package routers

import (
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNavigationRoutes(router chi.Router, middlewares *middlewares.Middlewares, navigationController *controllers.NavigationController) {
	router.With(middlewares.Authenticate).Get("/menu", navigationController.GetMenu)
}
