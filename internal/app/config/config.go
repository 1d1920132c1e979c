package config

import (
	"medilabx-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:            utils.GetEnvCSV("APP_ALLOWED_ORIGINS", nil),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		LabAPI: AppLabAPI{
			BaseUrl: utils.GetEnvString("LAB_API_BASE_URL", "http://localhost:8000/api"),
			Timeout: utils.GetEnvDuration("LAB_API_REQUEST_TIMEOUT", defaultLabAPITimeout),
		},
		Session: AppSession{
			TokenTTL: utils.GetEnvDuration("SESSION_DEFAULT_TTL", defaultSessionTTL),
		},
		ReportArchive: AppReportArchive{
			Enabled:    utils.GetEnvBool("REPORT_ARCHIVE_ENABLED", false),
			BucketName: utils.GetEnvString("REPORT_ARCHIVE_BUCKET_NAME", "medilabx-reports"),
		},
		Events: AppEvents{
			Enabled:      utils.GetEnvBool("EVENTS_ENABLED", false),
			ExchangeName: utils.GetEnvString("EVENTS_EXCHANGE_NAME", "medilabx.lab"),
		},
	}
}
