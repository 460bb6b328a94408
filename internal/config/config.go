package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration, read from a YAML file and
// overridden by environment variables.
type Config struct {
	// Environment selects logger presets (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"       yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"       yaml:"idleTimeout"`
		RequestTimeout    time.Duration `env:"HTTP_REQUEST_TIMEOUT"     env-default:"10s"      yaml:"requestTimeout"`
		MaxHeaderBytes    int           `env:"HTTP_MAX_HEADER_BYTES"    env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath       string        `env:"HTTP_METRICS_PATH"        env-default:"/metrics" yaml:"metricsPath"`
		CORSOrigins       []string      `env:"HTTP_CORS_ORIGINS"        env-default:"*"        yaml:"corsOrigins" env-separator:","` //nolint: lll
	} `yaml:"http"`

	// Database is the PostgreSQL instance holding the job queue and run history.
	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"reports"   yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"reports"   yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"reports"   yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Graph is the Neo4j instance holding the church hierarchy.
	Graph struct {
		URI                   string        `env:"NEO4J_URI"                     env-default:"neo4j://localhost:7687" yaml:"uri"`
		Username              string        `env:"NEO4J_USER"                    env-default:"neo4j"                  yaml:"username"`
		Password              string        `env:"NEO4J_PASSWORD"                                                     yaml:"password"`
		Database              string        `env:"NEO4J_DATABASE"                                                     yaml:"database"`
		MaxConnectionPoolSize int           `env:"NEO4J_MAX_CONNECTION_POOL_SIZE" env-default:"50"                   yaml:"maxConnectionPoolSize"`
		MaxConnectionLifetime time.Duration `env:"NEO4J_MAX_CONNECTION_LIFETIME"  env-default:"1h"                   yaml:"maxConnectionLifetime"`
		AcquisitionTimeout    time.Duration `env:"NEO4J_ACQUISITION_TIMEOUT"      env-default:"1m"                   yaml:"acquisitionTimeout"`
	} `yaml:"graph"`

	Sheets struct {
		SpreadsheetID string `env:"GOOGLE_SHEETS_SPREADSHEET_ID"                                   yaml:"spreadsheetId"`
		SheetName     string `env:"GOOGLE_SHEETS_SHEET_NAME"       env-default:"ALL Accra Graph Data" yaml:"sheetName"`
		// CredentialsFile is a service account key file. CredentialsJSON wins when both are set.
		CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS" yaml:"credentialsFile"`
		CredentialsJSON string `env:"GOOGLE_SHEETS_CREDENTIALS_JSON" yaml:"credentialsJson"`
	} `yaml:"sheets"`

	Notifier struct {
		BaseURL    string        `env:"NOTIFY_BASE_URL"   yaml:"baseUrl"`
		SecretKey  string        `env:"NOTIFY_SECRET_KEY" yaml:"secretKey"`
		Sender     string        `env:"NOTIFY_SENDER"     env-default:"FLC Admin" yaml:"sender"`
		Recipients []string      `env:"NOTIFY_RECIPIENTS" env-separator:","       yaml:"recipients"`
		Timeout    time.Duration `env:"NOTIFY_TIMEOUT"    env-default:"15s"       yaml:"timeout"`
	} `yaml:"notifier"`

	Report struct {
		CampusName string `env:"REPORT_CAMPUS_NAME" env-default:"Accra" yaml:"campusName"`
		// Schedule is a standard five-field cron expression in Timezone.
		Schedule     string        `env:"REPORT_SCHEDULE"      env-default:"0 6 * * 1"   yaml:"schedule"`
		Timezone     string        `env:"REPORT_TIMEZONE"      env-default:"Africa/Accra" yaml:"timezone"`
		QueryTimeout time.Duration `env:"REPORT_QUERY_TIMEOUT" env-default:"2m"          yaml:"queryTimeout"`
		RunTimeout   time.Duration `env:"REPORT_RUN_TIMEOUT"   env-default:"10m"         yaml:"runTimeout"`
		MaxWorkers   int           `env:"REPORT_MAX_WORKERS"   env-default:"2"           yaml:"maxWorkers"`
	} `yaml:"report"`

	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv builds the configuration from environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env config: %w", err)
	}

	return &cfg, nil
}
