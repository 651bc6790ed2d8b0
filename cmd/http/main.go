package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bimar-service/internal/app/config"
	"bimar-service/internal/app/delivery/http/controllers"
	"bimar-service/internal/app/delivery/http/middlewares"
	"bimar-service/internal/app/delivery/http/routers"
	"bimar-service/internal/app/drivers/database"
	"bimar-service/internal/app/drivers/logger"
	"bimar-service/internal/app/drivers/messaging"
	"bimar-service/internal/app/drivers/storage"
	"bimar-service/internal/app/services/admins"
	"bimar-service/internal/app/services/doctors"
	"bimar-service/internal/app/services/patients"
	"bimar-service/internal/app/services/shared/mailer"
	"bimar-service/internal/app/services/shared/redis"
	"bimar-service/internal/app/services/shared/session"
	minioStorage "bimar-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	mailerService, err := mailer.NewMailerService(rabbitMQ, internalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		bootLog.Fatalf("Failed to initialize mailer service: %v", err)
	}
	storageService := minioStorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)

	// Repositories
	doctorRepository := doctors.NewDoctorMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	adminRepository := admins.NewAdminMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, adminRepository, redisRepository, sessionService, mailerService, internalConfig, zapLogger)
	credentialingUsecase := admins.NewCredentialingUsecase(adminRepository, doctorRepository, patientRepository, mailerService, zapLogger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, sessionService, internalConfig, zapLogger)
	diagnosisUsecase := patients.NewDiagnosisUsecase(patientRepository, zapLogger)

	// Delivery
	mw := middlewares.NewMiddlewares(sessionService, internalConfig, zapLogger)
	doctorController := controllers.NewDoctorController(zapLogger, doctorUsecase, storageService, internalConfig.App.UploadMaxSizeInMB)
	adminController := controllers.NewAdminController(zapLogger, credentialingUsecase)
	patientController := controllers.NewPatientController(zapLogger, patientUsecase)
	diagnosisController := controllers.NewDiagnosisController(zapLogger, diagnosisUsecase, storageService, internalConfig.App.UploadMaxSizeInMB)

	routers.SetupRoutes(chiRouter, internalConfig, mw, doctorController, adminController, patientController, diagnosisController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Errorf("Error while closing application resources: %v", err)
	}

	bootLog.Println("Server exiting")
}
