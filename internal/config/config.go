package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fleetflow/internal/database"
	"fleetflow/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const DefaultEnvFile = "configs/.env"

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	return database.DSN(c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type ELDConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// Enabled reports whether an ELD vendor endpoint is configured.
func (c ELDConfig) Enabled() bool {
	return c.BaseURL != ""
}

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	FleetMPG           decimal.Decimal
	DefaultFuelType    string
	FilingBufferDays   int
	RatesFile          string
	JWTSecret          string
	CORSAllowedOrigins []string

	DB  DBConfig
	ELD ELDConfig
}

// LoadEnvFile loads a .env file into the process environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Load reads the configuration from the environment, applying defaults.
// Every invalid value is reported in the returned error.
func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		DefaultFuelType: strings.ToLower(getEnv("IFTA_DEFAULT_FUEL_TYPE", model.FuelTypeDiesel)),
		RatesFile:       os.Getenv("IFTA_RATES_FILE"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173")),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		ELD: ELDConfig{
			BaseURL: strings.TrimRight(os.Getenv("ELD_API_BASE_URL"), "/"),
			APIKey:  os.Getenv("ELD_API_KEY"),
		},
	}

	mpg, err := decimal.NewFromString(getEnv("IFTA_BASE_FLEET_MPG", "6.5"))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("IFTA_BASE_FLEET_MPG: %w", err))
	case !mpg.IsPositive():
		errs = append(errs, fmt.Errorf("IFTA_BASE_FLEET_MPG must be greater than 0, got %s", mpg))
	}
	cfg.FleetMPG = mpg

	if !model.IsFuelType(cfg.DefaultFuelType) {
		errs = append(errs, fmt.Errorf("IFTA_DEFAULT_FUEL_TYPE %q is not one of %s",
			cfg.DefaultFuelType, strings.Join(model.FuelTypes, ", ")))
	}

	cfg.FilingBufferDays, err = getInt("IFTA_FILING_DEADLINE_BUFFER_DAYS", 7, 0, 90)
	if err != nil {
		errs = append(errs, err)
	}

	timeout, err := getInt("ELD_TIMEOUT_SECONDS", 15, 10, 30)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.ELD.Timeout = time.Duration(timeout) * time.Second

	cfg.ELD.MaxRetries, err = getInt("ELD_MAX_RETRIES", 3, 0, 10)
	if err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback, min, max int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	if n < min || n > max {
		return fallback, fmt.Errorf("%s must be between %d and %d, got %d", key, min, max, n)
	}
	return n, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
