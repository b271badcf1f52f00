package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB connection string.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling engine tuning.
	MaxCalendarLanes      int     `mapstructure:"MAX_CALENDAR_LANES"`
	CacheSkipThreshold    float64 `mapstructure:"CACHE_SKIP_THRESHOLD"`
	AvailabilityBatchSize int     `mapstructure:"AVAILABILITY_BATCH_SIZE"`

	// Session, cache and hold lifetimes.
	PickerSessionTTLMin int `mapstructure:"PICKER_SESSION_TTL_MIN"`
	CalendarCacheTTLSec int `mapstructure:"CALENDAR_CACHE_TTL_SEC"`
	TentativeHoldTTLMin int `mapstructure:"TENTATIVE_HOLD_TTL_MIN"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("MAX_CALENDAR_LANES", 2)
	viper.SetDefault("CACHE_SKIP_THRESHOLD", 0.80)
	viper.SetDefault("AVAILABILITY_BATCH_SIZE", 7)
	viper.SetDefault("PICKER_SESSION_TTL_MIN", 30)
	viper.SetDefault("CALENDAR_CACHE_TTL_SEC", 60)
	viper.SetDefault("TENTATIVE_HOLD_TTL_MIN", 120)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

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
