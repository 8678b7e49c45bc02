package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"booking"`
	Password    string `envconfig:"DB_PASSWORD" default:""`
	DBName      string `envconfig:"DB_NAME" default:"booking"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Europe/Warsaw"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:""`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

// BookingConfig drives the availability engine and its record store.
type BookingConfig struct {
	HorizonDays  int           `envconfig:"BOOKING_HORIZON_DAYS" default:"14"`
	VenueLayout  string        `envconfig:"VENUE_LAYOUT_PATH" default:"configs/venue.yaml"`
	VenueTZ      string        `envconfig:"VENUE_TIMEZONE" default:"Europe/Warsaw"`
	RecordSource string        `envconfig:"RECORD_SOURCE" default:"postgres"`
	RecordAPIURL string        `envconfig:"RECORD_API_URL" default:"http://localhost:3131"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	RefreshCron  string        `envconfig:"REFRESH_CRON" default:"*/5 * * * *"`
	PhoneRegion  string        `envconfig:"BOOKING_PHONE_REGION" default:"PL"`
}

type RateLimitConfig struct {
	ReservationsPerMinute int           `envconfig:"RATE_LIMIT_RESERVATIONS_PER_MINUTE" default:"5"`
	Burst                 int           `envconfig:"RATE_LIMIT_BURST" default:"2"`
	VisitorTTL            time.Duration `envconfig:"RATE_LIMIT_VISITOR_TTL" default:"10m"`
}

const (
	RecordSourcePostgres = "postgres"
	RecordSourceHTTP     = "http"
)

// AllowsOrigin reports whether a browser origin may call the API. "*" in
// the list admits every origin.
func (c CORSConfig) AllowsOrigin(origin string) bool {
	return slices.Contains(c.AllowOrigins, "*") || slices.Contains(c.AllowOrigins, origin)
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.VenueTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid VENUE_TIMEZONE %q: %w", c.VenueTZ, err)
	}
	return loc, nil
}

func (c BookingConfig) Validate() error {
	if c.HorizonDays < 0 {
		return fmt.Errorf("BOOKING_HORIZON_DAYS must not be negative, got %d", c.HorizonDays)
	}
	switch c.RecordSource {
	case RecordSourcePostgres, RecordSourceHTTP:
	default:
		return fmt.Errorf("unsupported RECORD_SOURCE: %s", c.RecordSource)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	return nil
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid booking config: %w", err)
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
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			HorizonDays:  14,
			VenueLayout:  "configs/venue.yaml",
			VenueTZ:      "UTC",
			RecordSource: RecordSourcePostgres,
			FetchTimeout: 5 * time.Second,
			RefreshCron:  "*/5 * * * *",
			PhoneRegion:  "PL",
		},
		RateLimit: RateLimitConfig{
			ReservationsPerMinute: 600,
			Burst:                 100,
			VisitorTTL:            time.Minute,
		},
	}
}
