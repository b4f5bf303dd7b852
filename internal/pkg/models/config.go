package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Firebase  FirebaseConfig
	Dispatch  DispatchConfig
	Scheduler SchedulerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// FirebaseConfig contains FCM push credentials.
// Push delivery is disabled when CredentialsFile is empty.
type FirebaseConfig struct {
	CredentialsFile string
}

// DispatchConfig contains the trip dispatch tunables
type DispatchConfig struct {
	CellPrecision     uint    `json:"cell_precision"`      // geohash precision of shoemaker cells
	RingK             int     `json:"ring_k"`              // search ring radius in cells
	CandidateLimit    int     `json:"candidate_limit"`     // max shoemakers offered per round
	OfferTTLSeconds   int     `json:"offer_ttl_seconds"`   // per-candidate response window
	WaitWindowSeconds int     `json:"wait_window_seconds"` // overall wait before a round is lost
	RetryDelaySeconds int     `json:"retry_delay_seconds"` // delay before a scheduled trip is re-dispatched
	ReminderLeadMin   int     `json:"reminder_lead_min"`   // minutes before schedule time to send reminders
	ConflictWindowMin int     `json:"conflict_window_min"` // schedule conflict window in minutes
	BalanceFloor      int64   `json:"balance_floor"`       // minimum wallet balance for cash trips
	AverageSpeedKmh   float64 `json:"average_speed_kmh"`   // speed used for travel time estimates
}

// SchedulerConfig contains job queue worker tunables
type SchedulerConfig struct {
	Concurrency    int `json:"concurrency"`
	PollIntervalMs int `json:"poll_interval_ms"`
	MaxAttempts    int `json:"max_attempts"`
	BackoffBaseSec int `json:"backoff_base_sec"` // doubled on every failed attempt
}
