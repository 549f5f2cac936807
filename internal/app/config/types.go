package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	InternalConfig struct {
		App  App
		JWT  JWT
		Chat Chat
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		Timezone                   string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		NotificationQueue          string
		AttachmentBucketName       string
		AttachmentMaxSizeInMB      int64
		AttachmentURLExpiryInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Chat struct {
		WriteWaitInSeconds     int
		PongWaitInSeconds      int
		PingPeriodInSeconds    int
		MaxFrameSizeInBytes    int64
		SendBufferSize         int
		InboundFramesPerSecond int
		InboundFrameBurst      int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
