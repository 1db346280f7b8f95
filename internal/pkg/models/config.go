package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	API      APIConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	NSQ      NSQConfig
	Poller   PollerConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains the local HTTP surface configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// APIConfig points at the remote booking service
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// StorageConfig selects the local profile store backend
type StorageConfig struct {
	Backend string // "file" or "redis"
	Dir     string // file backend root directory
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// DatabaseConfig contains the balance ledger database configuration.
// An empty Host disables the database-backed ledger.
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

// NSQConfig contains the decision event producer configuration.
// An empty Address disables event publishing.
type NSQConfig struct {
	Address string
	Topic   string
}

// PollerConfig controls the booking auto-refresh task
type PollerConfig struct {
	Enabled  bool
	Interval int // seconds
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
