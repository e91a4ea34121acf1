package routers

import (
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	authLimiter := middlewares.CreateAuthRateLimiter()
	router.With(authLimiter, middlewares.RedirectAuthenticated).Post("/login", authController.Login)
	router.With(authLimiter, middlewares.RedirectAuthenticated).Post("/register", authController.Register)
	router.With(authLimiter, middlewares.RedirectAuthenticated).Post("/forgot-password", authController.ForgotPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/session", authController.Resume)
	router.With(middlewares.Authenticate).Get("/profile", authController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", authController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/change-password", authController.ChangePassword)
}
