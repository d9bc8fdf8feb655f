package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds the PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN builds the postgres URL consumed by the gorm driver.
func (c DatabaseConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=" + c.SSLMode
}

// ReportConfig controls how trend reports are fetched.
type ReportConfig struct {
	DefaultMonths int
	MaxMonths     int

	// TolerateSourceFailure zero-fills a metric whose query failed instead of
	// failing the whole report.
	TolerateSourceFailure bool

	LapseStatuses             []string
	ExcludedProductCategories []int
}

// Config is the whole service configuration.
type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string
	Database    DatabaseConfig
	Report      ReportConfig
	SeedMonths  int
}

// Load reads configs/.env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() (Config, error) {
	var errs []string
	intVar := func(key string, fallback int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not an integer", key, raw))
			return fallback
		}
		return v
	}

	lifetime := 5 * time.Minute
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("DB_CONN_MAX_LIFETIME: %v", err))
		} else {
			lifetime = d
		}
	}

	tolerate := false
	if raw := os.Getenv("REPORT_TOLERATE_SOURCE_FAILURE"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("REPORT_TOLERATE_SOURCE_FAILURE: %q is not a boolean", raw))
		}
		tolerate = b
	}

	var excluded []int
	for _, raw := range splitList(getEnv("REPORT_EXCLUDED_PRODUCT_CATEGORIES", "8,11")) {
		id, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("REPORT_EXCLUDED_PRODUCT_CATEGORIES: %q is not an integer", raw))
			continue
		}
		excluded = append(excluded, id)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "postgres"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    intVar("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    intVar("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: lifetime,
		},
		Report: ReportConfig{
			DefaultMonths:             intVar("REPORT_DEFAULT_MONTHS", 6),
			MaxMonths:                 intVar("REPORT_MAX_MONTHS", 60),
			TolerateSourceFailure:     tolerate,
			LapseStatuses:             splitList(getEnv("REPORT_LAPSE_STATUSES", "Auto-Lapse,Cancelled")),
			ExcludedProductCategories: excluded,
		},
		SeedMonths: intVar("SEED_MONTHS", 18),
	}

	if cfg.Report.DefaultMonths < 1 || cfg.Report.DefaultMonths > cfg.Report.MaxMonths {
		errs = append(errs, fmt.Sprintf("REPORT_DEFAULT_MONTHS must be between 1 and REPORT_MAX_MONTHS (%d)", cfg.Report.MaxMonths))
	}
	if len(cfg.Report.LapseStatuses) == 0 {
		errs = append(errs, "REPORT_LAPSE_STATUSES must list at least one status")
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
