package routers

import (
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"
	"ogec-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// entityMount binds one proxied backend resource to the client route whose
// allow set gates it.
type entityMount struct {
	routePath string
	resource  string
}

var entityMounts = []entityMount{
	{"/posts", constvars.ResourcePosts},
	{"/anachids", constvars.ResourceAnachids},
	{"/programs", constvars.ResourcePrograms},
	{"/cartes-techniques", constvars.ResourceCartesTechniques},
	{"/phases", constvars.ResourcePhases},
	{"/teams", constvars.ResourceTeams},
	{"/members", constvars.ResourceUsers},
	{"/enfants", constvars.ResourceEnfants},
	{"/maladies", constvars.ResourceMaladies},
	{"/hobbies", constvars.ResourceHobbies},
	{"/transactions", constvars.ResourceTransactions},
}

func attachEntityRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	entityController *controllers.EntityController,
	verificationController *controllers.VerificationController,
) {
	for _, mount := range entityMounts {
		mount := mount
		router.Route(mount.routePath, func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Use(middlewares.RequireRoute(mount.routePath))
			r.Get("/", entityController.List(mount.resource))
			r.Post("/", entityController.Create(mount.resource))
			r.Get("/{id}", entityController.Get(mount.resource))
			r.Put("/{id}", entityController.Update(mount.resource))
			r.Delete("/{id}", entityController.Delete(mount.resource))
		})
	}

	router.Route("/verifications", func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRoute("/verifications"))
		r.Get("/", verificationController.ListInactive)
		r.Post("/{id}/activate", verificationController.Activate)
		r.Delete("/{id}", verificationController.Remove)
	})
}
