package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Geofence GeofenceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port int
	Env  string
}

// GeofenceConfig holds the office location and radius. Lat and Lng both
// zero means no office is configured and geofence evaluation is disabled.
type GeofenceConfig struct {
	OfficeLat float64
	OfficeLng float64
	RadiusM   float64
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port: appPort,
		Env:  getEnv("APP_ENV", "development"),
	}

	// Geofence configuration
	officeLat, err := getEnvFloat("OFFICE_LAT", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LAT: %w", err)
	}
	officeLng, err := getEnvFloat("OFFICE_LNG", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LNG: %w", err)
	}
	radiusM, err := getEnvFloat("GEOFENCE_M", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_M: %w", err)
	}

	config.Geofence = GeofenceConfig{
		OfficeLat: officeLat,
		OfficeLng: officeLng,
		RadiusM:   radiusM,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Geofence.RadiusM < 0 {
		return fmt.Errorf("GEOFENCE_M must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}
