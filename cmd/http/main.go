package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/delivery/http/controllers"
	"ogec-service/internal/app/delivery/http/middlewares"
	"ogec-service/internal/app/delivery/http/routers"
	"ogec-service/internal/app/drivers/database"
	"ogec-service/internal/app/drivers/logger"
	"ogec-service/internal/app/drivers/storage"
	"ogec-service/internal/app/services/auth"
	"ogec-service/internal/app/services/entities"
	"ogec-service/internal/app/services/i18n"
	"ogec-service/internal/app/services/navigation"
	"ogec-service/internal/app/services/preferences"
	sharedRedis "ogec-service/internal/app/services/shared/redis"
	"ogec-service/internal/app/services/uploads"
	"ogec-service/internal/app/services/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapTheApp(bootstrap); err != nil {
		bootstrapLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootstrapLog.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Errorf("Error during shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	sessionRepository := sharedRedis.NewSessionRepository(bootstrap.Redis)
	upstreamClient := upstream.NewClient(bootstrap.InternalConfig)

	translator, err := i18n.NewTranslator(bootstrap.Logger)
	if err != nil {
		return err
	}

	navigationUsecase := navigation.NewNavigationUsecase(translator)
	preferenceUsecase := preferences.NewPreferenceUsecase(sessionRepository, translator, bootstrap.InternalConfig, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(upstreamClient, sessionRepository, bootstrap.InternalConfig, bootstrap.Logger)
	entityUsecase := entities.NewEntityUsecase(upstreamClient, sessionRepository, bootstrap.Logger)
	uploadUsecase := uploads.NewUploadUsecase(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.Logger)

	mws := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, navigationUsecase, bootstrap.InternalConfig)

	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, preferenceUsecase, translator)
	navigationController := controllers.NewNavigationController(bootstrap.Logger, navigationUsecase, preferenceUsecase)
	preferenceController := controllers.NewPreferenceController(bootstrap.Logger, preferenceUsecase)
	entityController := controllers.NewEntityController(bootstrap.Logger, entityUsecase)
	verificationController := controllers.NewVerificationController(bootstrap.Logger, entityUsecase)
	uploadController := controllers.NewUploadController(bootstrap.Logger, uploadUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mws,
		authController,
		navigationController,
		preferenceController,
		entityController,
		verificationController,
		uploadController,
	)
	return nil
}
