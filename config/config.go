package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCampaignDB      int    `mapstructure:"REDIS_CAMPAIGN_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
	SessionTTLMinutes    int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Restaurant booking rules.
	Timezone            string `mapstructure:"TIMEZONE"`
	OpeningHour         int    `mapstructure:"OPENING_HOUR"`
	ClosingHour         int    `mapstructure:"CLOSING_HOUR"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	MinAdvanceHours     int    `mapstructure:"MIN_ADVANCE_HOURS"`
	MaxAdvanceDays      int    `mapstructure:"MAX_ADVANCE_DAYS"`
	MaxPartySize        int    `mapstructure:"MAX_PARTY_SIZE"`

	// Pricing.
	Currency                string  `mapstructure:"CURRENCY"`
	TourismTaxRate          float64 `mapstructure:"TOURISM_TAX_RATE"`
	CateringLevyRate        float64 `mapstructure:"CATERING_LEVY_RATE"`
	MergeDuplicateCartItems bool    `mapstructure:"MERGE_DUPLICATE_CART_ITEMS"`

	// Simulated payments.
	PaymentDelaySeconds   int `mapstructure:"PAYMENT_DELAY_SECONDS"`
	PaymentTimeoutSeconds int `mapstructure:"PAYMENT_TIMEOUT_SECONDS"`

	// Reservation reminders.
	RemindersEnabled  bool `mapstructure:"REMINDERS_ENABLED"`
	ReminderLeadHours int  `mapstructure:"REMINDER_LEAD_HOURS"`
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

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CAMPAIGN_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)

	viper.SetDefault("TIMEZONE", "Africa/Nairobi")
	viper.SetDefault("OPENING_HOUR", 11)
	viper.SetDefault("CLOSING_HOUR", 22)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("MIN_ADVANCE_HOURS", 2)
	viper.SetDefault("MAX_ADVANCE_DAYS", 30)
	viper.SetDefault("MAX_PARTY_SIZE", 12)

	viper.SetDefault("CURRENCY", "KES")
	viper.SetDefault("TOURISM_TAX_RATE", 0.16)
	viper.SetDefault("CATERING_LEVY_RATE", 0.02)
	viper.SetDefault("MERGE_DUPLICATE_CART_ITEMS", false)

	viper.SetDefault("PAYMENT_DELAY_SECONDS", 3)
	viper.SetDefault("PAYMENT_TIMEOUT_SECONDS", 30)

	viper.SetDefault("REMINDERS_ENABLED", true)
	viper.SetDefault("REMINDER_LEAD_HOURS", 2)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL is how long an idle reservation or order session survives in Redis.
func SessionTTL() time.Duration {
	if AppConfig.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}

// Location resolves TIMEZONE, falling back to East Africa Time.
func Location() *time.Location {
	if AppConfig.Timezone != "" {
		if loc, err := time.LoadLocation(AppConfig.Timezone); err == nil {
			return loc
		}
	}
	return time.FixedZone("EAT", 3*60*60)
}
