package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`

	// Upstream ticket API (system of record for tickets and users).
	TicketAPIBaseURL    string `mapstructure:"TICKET_API_BASE_URL"`
	TicketAPIKey        string `mapstructure:"TICKET_API_KEY"`
	TicketAPITimeoutSec int    `mapstructure:"TICKET_API_TIMEOUT_SEC"`

	// Detection engine tuning.
	DetectionEnabled       bool `mapstructure:"DETECTION_ENABLED"`
	DetectionMinTextLength int  `mapstructure:"DETECTION_MIN_TEXT_LENGTH"`
	DetectionDebounceMs    int  `mapstructure:"DETECTION_DEBOUNCE_MS"`

	// Chat session lifetime in minutes.
	ChatSessionTTLMin int `mapstructure:"CHAT_SESSION_TTL_MIN"`
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
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("TICKET_API_BASE_URL", "http://localhost:9090")
	viper.SetDefault("TICKET_API_KEY", "")
	viper.SetDefault("TICKET_API_TIMEOUT_SEC", 15)
	viper.SetDefault("DETECTION_ENABLED", true)
	viper.SetDefault("DETECTION_MIN_TEXT_LENGTH", 5)
	viper.SetDefault("DETECTION_DEBOUNCE_MS", 500)
	viper.SetDefault("CHAT_SESSION_TTL_MIN", 30)

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
