package config

import (
	"log"

	"summitos/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB   int    `mapstructure:"REDIS_SESSION_DB"`
	RedisTelemetryDB int    `mapstructure:"REDIS_TELEMETRY_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Google Maps keys. The fallback is tried only when the primary fails.
	GoogleAPIKey         string `mapstructure:"GOOGLE_API_KEY"`
	GoogleFallbackAPIKey string `mapstructure:"GOOGLE_FALLBACK_API_KEY"`

	// Microsoft Graph (calendar + time-off).
	GraphTenantID     string `mapstructure:"GRAPH_TENANT_ID"`
	GraphClientID     string `mapstructure:"GRAPH_CLIENT_ID"`
	GraphClientSecret string `mapstructure:"GRAPH_CLIENT_SECRET"`
	GraphOrganizer    string `mapstructure:"GRAPH_ORGANIZER"`
	GraphStaffID      string `mapstructure:"GRAPH_STAFF_ID"`

	// Tessie vehicle telemetry.
	TessieAPIKey string `mapstructure:"TESSIE_API_KEY"`
	TessieVIN    string `mapstructure:"TESSIE_VIN"`

	// SMTP notifications.
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   string `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	SMTPFrom   string `mapstructure:"SMTP_FROM"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// Business policy. BusinessHours optionally overrides the built-in hours
	// table; keys are day names and windows pass through the midnight-bleed
	// normalizer.
	BusinessTimezone string                           `mapstructure:"BUSINESS_TIMEZONE"`
	BusinessHours    map[string]models.OperatingHours `mapstructure:"BUSINESS_HOURS"`
	HomeBaseLat      float64                          `mapstructure:"HOME_BASE_LAT"`
	HomeBaseLng      float64                          `mapstructure:"HOME_BASE_LNG"`
	RoundTripFactor  float64                          `mapstructure:"ROUND_TRIP_FACTOR"`
	StopDetourMiles  float64                          `mapstructure:"STOP_DETOUR_MILES"`
	SessionTTLHours  int                              `mapstructure:"SESSION_TTL_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_TELEMETRY_DB", 1)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("GOOGLE_FALLBACK_API_KEY", "")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Denver")
	viper.SetDefault("HOME_BASE_LAT", 38.886637)
	viper.SetDefault("HOME_BASE_LNG", -104.804107)
	viper.SetDefault("ROUND_TRIP_FACTOR", 2.0)
	viper.SetDefault("STOP_DETOUR_MILES", 3.0)
	viper.SetDefault("SESSION_TTL_HOURS", 4)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
