package main

import (
	"context"
	"fmt"
	"medilabx-service/internal/app/config"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/delivery/http/controllers"
	"medilabx-service/internal/app/delivery/http/middlewares"
	"medilabx-service/internal/app/delivery/http/routers"
	"medilabx-service/internal/app/drivers/database"
	"medilabx-service/internal/app/drivers/logger"
	"medilabx-service/internal/app/drivers/messaging"
	"medilabx-service/internal/app/drivers/storage"
	"medilabx-service/internal/app/services/core/packages"
	"medilabx-service/internal/app/services/core/reports"
	"medilabx-service/internal/app/services/core/samples"
	"medilabx-service/internal/app/services/core/session"
	"medilabx-service/internal/app/services/labapi"
	authApi "medilabx-service/internal/app/services/labapi/auth"
	bookingApi "medilabx-service/internal/app/services/labapi/bookings"
	reportApi "medilabx-service/internal/app/services/labapi/reports"
	testApi "medilabx-service/internal/app/services/labapi/tests"
	"medilabx-service/internal/app/services/shared/events"
	"medilabx-service/internal/app/services/shared/rbac"
	"medilabx-service/internal/app/services/shared/redis"
	sharedStorage "medilabx-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Events.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if internalConfig.ReportArchive.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.ReportArchive.BucketName)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionRepository := session.NewSessionRepository(redisRepository)

	// Lab backend
	requester := labapi.NewRequester(
		internalConfig.LabAPI.BaseUrl,
		internalConfig.LabAPI.RequestTimeout(),
		session.ContextTokenSource{},
		log,
	)
	authApiClient := authApi.NewAuthApiClient(requester, log)
	bookingApiClient := bookingApi.NewBookingApiClient(requester, log)
	reportApiClient := reportApi.NewReportApiClient(requester, log)
	testApiClient := testApi.NewTestApiClient(requester, log)

	// Lifecycle events
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewPublisher(bootstrap.RabbitMQ, internalConfig.Events.ExchangeName, log)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Report archive
	var reportArchive contracts.ReportArchive
	if bootstrap.Minio != nil {
		reportArchive = sharedStorage.NewMinioReportArchive(bootstrap.Minio, internalConfig.ReportArchive.BucketName, log)
	}

	// RBAC
	authorizer, err := rbac.NewEnforcer(routers.BasePath(internalConfig))
	if err != nil {
		return err
	}

	// Usecases
	sessionUsecase := session.NewSessionUsecase(authApiClient, sessionRepository, internalConfig.Session.DefaultTTL(), log)
	sampleUsecase := samples.NewSampleUsecase(bookingApiClient, eventPublisher, log)
	reportUsecase := reports.NewReportUsecase(bookingApiClient, reportApiClient, testApiClient, reportArchive, log)
	packageUsecase := packages.NewPackageUsecase(log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, sessionRepository, authorizer, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		controllers.NewAuthController(log, sessionUsecase, internalConfig),
		controllers.NewSampleController(log, sampleUsecase, internalConfig),
		controllers.NewReportController(log, reportUsecase, internalConfig),
		controllers.NewPackageController(log, packageUsecase),
	)
	return nil
}
