package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"denials-tracker-service/internal/app/config"
	"denials-tracker-service/internal/app/delivery/http/middlewares"
	"denials-tracker-service/internal/app/delivery/http/routers"
	"denials-tracker-service/internal/app/drivers/database"
	"denials-tracker-service/internal/app/drivers/logger"
	"denials-tracker-service/internal/app/services/core/auth"
	"denials-tracker-service/internal/app/services/core/denials"
	"denials-tracker-service/internal/app/services/core/notes"
	"denials-tracker-service/internal/app/services/core/patients"
	"denials-tracker-service/internal/app/services/core/session"
	sharedredis "denials-tracker-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, sessionService, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Session
	sessionController := session.NewSessionController(bootstrap.Logger, sessionService)

	// Denial
	noteMongoRepository := notes.NewNoteMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	denialMongoRepository := denials.NewDenialMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	denialUsecase := denials.NewDenialUsecase(denialMongoRepository, noteMongoRepository, bootstrap.Logger)
	denialController := denials.NewDenialController(bootstrap.Logger, denialUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, patientController, sessionController, denialController)
}
