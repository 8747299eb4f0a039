package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"SERVER_PORT"`
		Mode           string `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"` // comma separated
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		Seed            bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Scheduling struct {
		Timezone                      string        `yaml:"timezone" env:"SCHEDULING_TIMEZONE"`
		StartTime                     string        `yaml:"start_time" env:"SCHEDULING_START_TIME"` // HH:MM
		DefaultDurationMinutes        int           `yaml:"default_duration_minutes" env:"SCHEDULING_DEFAULT_DURATION_MINUTES"`
		MaxSessionsPerProfessorPerDay int           `yaml:"max_sessions_per_professor_per_day" env:"SCHEDULING_MAX_SESSIONS_PER_PROFESSOR_PER_DAY"`
		PreviewSize                   int           `yaml:"preview_size" env:"SCHEDULING_PREVIEW_SIZE"`
		KPITrailingDays               int           `yaml:"kpi_trailing_days" env:"SCHEDULING_KPI_TRAILING_DAYS"`
		KPITopProfessors              int           `yaml:"kpi_top_professors" env:"SCHEDULING_KPI_TOP_PROFESSORS"`
		OptimizeDelay                 time.Duration `yaml:"optimize_delay" env:"SCHEDULING_OPTIMIZE_DELAY"`
	} `yaml:"scheduling"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables.
// Environment variables win over the .env file, which wins over the YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// godotenv.Load never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = "*"

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "examtable"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.Issuer = "examtable"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Scheduling defaults
	config.Scheduling.Timezone = "UTC"
	config.Scheduling.StartTime = "09:00"
	config.Scheduling.DefaultDurationMinutes = 120
	config.Scheduling.MaxSessionsPerProfessorPerDay = 3
	config.Scheduling.PreviewSize = 50
	config.Scheduling.KPITrailingDays = 30
	config.Scheduling.KPITopProfessors = 10
	config.Scheduling.OptimizeDelay = time.Second
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}

	if _, err := config.Location(); err != nil {
		return err
	}

	if _, _, err := config.StartClock(); err != nil {
		return err
	}

	s := config.Scheduling
	if s.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("scheduling default duration must be positive")
	}
	if s.MaxSessionsPerProfessorPerDay <= 0 {
		return fmt.Errorf("scheduling max sessions per professor per day must be positive")
	}
	if s.PreviewSize < 0 || s.KPITrailingDays <= 0 || s.KPITopProfessors <= 0 {
		return fmt.Errorf("scheduling preview size, KPI trailing days and KPI top professors must be positive")
	}
	if s.OptimizeDelay < 0 {
		return fmt.Errorf("scheduling optimize delay cannot be negative")
	}

	return nil
}

// Location resolves the scheduling timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Scheduling.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduling timezone %q: %w", c.Scheduling.Timezone, err)
	}
	return loc, nil
}

// StartClock parses the HH:MM start time of generated sessions.
func (c *Config) StartClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", c.Scheduling.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid scheduling start time %q: %w", c.Scheduling.StartTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Origins returns the CORS allowed origins.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
