package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/takerapp/taker-go/internal/pkg/logger"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// InitConfig loads configuration from environment variables,
// reading a .env file first when present.
func InitConfig(appName string) *models.Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables")
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        appName,
			Environment: GetEnv("APP_ENV", "development"),
			Debug:       GetEnvAsBool("APP_DEBUG", false),
			Version:     GetEnv("APP_VERSION", "1.0.0"),
		},
		Server: models.ServerConfig{
			Host:            GetEnv("SERVER_HOST", "0.0.0.0"),
			Port:            GetEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     GetEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			ShutdownTimeout: GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10),
		},
		Database: models.DatabaseConfig{
			Host:      GetEnv("DB_HOST", "localhost"),
			Port:      GetEnvAsInt("DB_PORT", 5432),
			Username:  GetEnv("DB_USERNAME", "postgres"),
			Password:  GetEnv("DB_PASSWORD", ""),
			Database:  GetEnv("DB_NAME", "taker"),
			SSLMode:   GetEnv("DB_SSL_MODE", "disable"),
			MaxConns:  GetEnvAsInt("DB_MAX_CONNS", 20),
			IdleConns: GetEnvAsInt("DB_IDLE_CONNS", 5),
		},
		Redis: models.RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnvAsInt("REDIS_PORT", 6379),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetEnvAsInt("REDIS_DB", 0),
			PoolSize: GetEnvAsInt("REDIS_POOL_SIZE", 10),
		},
		NATS: models.NATSConfig{
			URL: GetEnv("NATS_URL", "nats://localhost:4222"),
		},
		JWT: models.JWTConfig{
			Secret:     GetEnv("JWT_SECRET", ""),
			Expiration: GetEnvAsInt("JWT_EXPIRATION", 60),
			Issuer:     GetEnv("JWT_ISSUER", "taker"),
		},
		Logger: models.LoggerConfig{
			Level:    GetEnv("LOG_LEVEL", "info"),
			FilePath: GetEnv("LOG_FILE_PATH", ""),
		},
		Firebase: models.FirebaseConfig{
			CredentialsFile: GetEnv("FIREBASE_CREDENTIALS_FILE", ""),
		},
		Dispatch: models.DispatchConfig{
			CellPrecision:     uint(GetEnvAsInt("DISPATCH_CELL_PRECISION", 6)),
			RingK:             GetEnvAsInt("DISPATCH_RING_K", 12),
			CandidateLimit:    GetEnvAsInt("DISPATCH_CANDIDATE_LIMIT", 20),
			OfferTTLSeconds:   GetEnvAsInt("DISPATCH_OFFER_TTL_SECONDS", 60),
			WaitWindowSeconds: GetEnvAsInt("DISPATCH_WAIT_WINDOW_SECONDS", 62),
			RetryDelaySeconds: GetEnvAsInt("DISPATCH_RETRY_DELAY_SECONDS", 3),
			ReminderLeadMin:   GetEnvAsInt("DISPATCH_REMINDER_LEAD_MIN", 15),
			ConflictWindowMin: GetEnvAsInt("DISPATCH_CONFLICT_WINDOW_MIN", 15),
			BalanceFloor:      int64(GetEnvAsInt("DISPATCH_BALANCE_FLOOR", -100000)),
			AverageSpeedKmh:   GetEnvAsFloat("DISPATCH_AVERAGE_SPEED_KMH", 30),
		},
		Scheduler: models.SchedulerConfig{
			Concurrency:    GetEnvAsInt("SCHEDULER_CONCURRENCY", 10),
			PollIntervalMs: GetEnvAsInt("SCHEDULER_POLL_INTERVAL_MS", 500),
			MaxAttempts:    GetEnvAsInt("SCHEDULER_MAX_ATTEMPTS", 3),
			BackoffBaseSec: GetEnvAsInt("SCHEDULER_BACKOFF_BASE_SEC", 2),
		},
	}
}

// GetEnv retrieves an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float or returns a default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
