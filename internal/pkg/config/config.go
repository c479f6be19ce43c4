package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Engine  EngineConfig
	Metrics MetricsConfig
	Kafka   KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Helsinki"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// EngineConfig tunes the reservation engine. TimeZone decides what "today" means for edit windows.
type EngineConfig struct {
	TimeZone        string        `envconfig:"ENGINE_TIMEZONE" default:"Europe/Helsinki"`
	ProbeSize       int           `envconfig:"BATCH_PROBE_SIZE" default:"10"`
	PoolSize        int           `envconfig:"BATCH_POOL_SIZE" default:"16"`
	EditGracePeriod time.Duration `envconfig:"EDIT_GRACE_PERIOD" default:"1h"`
	FreeLabel       string        `envconfig:"PRICE_FREE_LABEL" default:"Free"`
	CurrencySymbol  string        `envconfig:"PRICE_CURRENCY_SYMBOL" default:"€"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_BATCH_TOPIC" default:"series-batch-results"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the engine timezone; an unknown zone name is a startup error.
func (c EngineConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c EngineConfig) Validate() error {
	if c.ProbeSize <= 0 {
		return fmt.Errorf("BATCH_PROBE_SIZE must be positive, got %d", c.ProbeSize)
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("BATCH_POOL_SIZE must be positive, got %d", c.PoolSize)
	}
	if c.EditGracePeriod < 0 {
		return fmt.Errorf("EDIT_GRACE_PERIOD cannot be negative, got %s", c.EditGracePeriod)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Helsinki",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Helsinki",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Engine: EngineConfig{
			TimeZone:        "Europe/Helsinki",
			ProbeSize:       10,
			PoolSize:        4,
			EditGracePeriod: time.Hour,
			FreeLabel:       "Free",
			CurrencySymbol:  "€",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
		Kafka: KafkaConfig{
			Topic:        "series-batch-results",
			WriteTimeout: 10 * time.Second,
		},
	}
}
