package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newconsult-service/internal/app/config"
	"newconsult-service/internal/app/delivery/http/controllers"
	"newconsult-service/internal/app/delivery/http/middlewares"
	"newconsult-service/internal/app/delivery/http/routers"
	"newconsult-service/internal/app/drivers/database"
	"newconsult-service/internal/app/drivers/logger"
	"newconsult-service/internal/app/drivers/messaging"
	"newconsult-service/internal/app/drivers/storage"
	"newconsult-service/internal/app/services/core/appointments"
	"newconsult-service/internal/app/services/core/auth"
	"newconsult-service/internal/app/services/core/chat"
	"newconsult-service/internal/app/services/core/messages"
	"newconsult-service/internal/app/services/core/payments"
	"newconsult-service/internal/app/services/core/session"
	"newconsult-service/internal/app/services/core/users"
	"newconsult-service/internal/app/services/shared/notificationqueue"
	redisRepo "newconsult-service/internal/app/services/shared/redis"
	minioStorage "newconsult-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
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
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.App.AttachmentBucketName)

	notificationQueueService, err := notificationqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.NotificationQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, userMongoRepository, sessionService, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Chat channel
	channelRegistry := chat.NewChannelRegistry(bootstrap.Logger)
	relayDispatcher := chat.NewRelayDispatcher(channelRegistry, bootstrap.Logger)

	// Message
	messageMongoRepository := messages.NewMessageMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	messageUsecase := messages.NewMessageUsecase(
		messageMongoRepository,
		appointmentMongoRepository,
		sessionService,
		channelRegistry,
		relayDispatcher,
		storageService,
		notificationQueueService,
		bootstrap.Logger,
	)
	messageController := controllers.NewMessageController(bootstrap.Logger, messageUsecase)

	chatController := controllers.NewChatController(
		bootstrap.Logger,
		sessionService,
		appointmentMongoRepository,
		channelRegistry,
		messageUsecase,
		bootstrap.InternalConfig.Chat,
	)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(appointmentMongoRepository, sessionService, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		userController,
		appointmentController,
		messageController,
		paymentController,
		chatController,
	)
}
