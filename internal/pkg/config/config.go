package config

import (
	"errors"
	"fmt"
	"io/fs"
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
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Upload UploadConfig
	Redis  RedisConfig
	Admin  AdminConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Total-Count,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// UploadConfig controls where event images are written and how they are exposed.
type UploadConfig struct {
	Dir        string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	PublicPath string `envconfig:"UPLOAD_PUBLIC_PATH" default:"/uploads"`
	MaxBytes   int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"` // 5MiB
}

type RedisConfig struct {
	Enabled   bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD" default:""`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"event-booking:"`
}

// AdminConfig seeds an administrator account at startup when Email and Password are set.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" default:""`
	Password string `envconfig:"ADMIN_PASSWORD" default:""`
	Name     string `envconfig:"ADMIN_NAME" default:"Administrator"`
}

func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values envconfig cannot express as tags.
func (c Config) Validate() error {
	var problems []error
	if d, err := time.ParseDuration(c.JWT.Duration); err != nil || d <= 0 {
		problems = append(problems, fmt.Errorf("JWT_DURATION must be a positive duration, got %q", c.JWT.Duration))
	}
	if c.Upload.Dir == "" {
		problems = append(problems, errors.New("UPLOAD_DIR must not be empty"))
	}
	if c.Upload.MaxBytes <= 0 {
		problems = append(problems, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.Admin.Enabled() && len(c.Admin.Password) < 8 {
		problems = append(problems, errors.New("ADMIN_PASSWORD must be at least 8 characters"))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never start the server.
func LoadDBConfig() (DBConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DBConfig{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
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
			MaxConns: 30,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
		},
		Upload: UploadConfig{
			Dir:        "./testdata/uploads",
			PublicPath: "/uploads",
			MaxBytes:   1 << 20,
		},
		Redis: RedisConfig{
			Enabled:   false,
			KeyPrefix: "event-booking-test:",
		},
	}
}
