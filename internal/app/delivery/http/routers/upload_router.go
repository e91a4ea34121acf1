package routers

import (
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, middlewares *middlewares.Middlewares, uploadController *controllers.UploadController) {
	router.With(middlewares.Authenticate).Post("/images", uploadController.UploadImage)
}
