package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	AnalyticsSync AnalyticsSync `mapstructure:",squash"`
	Fees          Fees          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr            string `mapstructure:"redis_addr"`
	Password        string `mapstructure:"redis_password"`
	DB              int    `mapstructure:"redis_db"`
	CacheTTLSeconds int    `mapstructure:"redis_cache_ttl_seconds"`
	Enabled         bool   `mapstructure:"redis_enabled"`
}

type AnalyticsSync struct {
	CronSchedule      string `mapstructure:"analytics_sync_cron"`
	LookbackDays      int    `mapstructure:"analytics_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"analytics_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"analytics_sync_enabled"`
	RetentionDays     int    `mapstructure:"analytics_retention_days"`
}

// Fees holds the transaction fee model applied when no per-order fee data is
// available: fee = rate * gross revenue + fixed * order count.
type Fees struct {
	TransactionRate  float64 `mapstructure:"transaction_fee_rate"`
	TransactionFixed float64 `mapstructure:"transaction_fee_fixed"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/storefront")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("ANALYTICS_SYNC_CRON", "0 3 * * *") // every day at 3am
	viper.SetDefault("ANALYTICS_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("ANALYTICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", false)
	viper.SetDefault("ANALYTICS_RETENTION_DAYS", 0) // 0 keeps rows forever

	viper.SetDefault("TRANSACTION_FEE_RATE", 0.029)
	viper.SetDefault("TRANSACTION_FEE_FIXED", 0.30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper successfully")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file with godotenv, trying the usual locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
