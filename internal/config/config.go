package config

import (
	"errors"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	AppPort               int    `mapstructure:"APP_PORT"`
	BcryptCost            int    `mapstructure:"BCRYPT_COST"`
	LoginRatePerMin       int    `mapstructure:"LOGIN_RATE_PER_MIN"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	MongoDBName           string `mapstructure:"MONGO_DB_NAME"`
	AuthHeader            string `mapstructure:"AUTH_HEADER"`
	PageSize              int    `mapstructure:"PAGE_SIZE"`
	ListLimit             int    `mapstructure:"LIST_LIMIT"`
	WoodfordDevice        string `mapstructure:"WOODFORD_DEVICE"`
	RainWindowMonths      int    `mapstructure:"RAIN_WINDOW_MONTHS"`
	CORSAllowOrigins      string `mapstructure:"CORS_ALLOW_ORIGINS"`
	RouteMetricsEnabled   bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
	RequestLoggingEnabled bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	PyroscopeAddress      string `mapstructure:"PYROSCOPE_SERVER_ADDRESS"`
}

var (
	cachedConfig *Config
	configMutex  sync.RWMutex
)

// Load loads configuration from environment variables and .env file
// It caches the result for subsequent calls
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	v.SetDefault("APP_PORT", 8088)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("LOGIN_RATE_PER_MIN", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DB_NAME", "weatherData")
	v.SetDefault("AUTH_HEADER", "authenticationKey")
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("LIST_LIMIT", 100)
	v.SetDefault("WOODFORD_DEVICE", "Woodford_Sensor")
	v.SetDefault("RAIN_WINDOW_MONTHS", 5)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("ROUTE_METRICS_ENABLED", true)
	v.SetDefault("REQUEST_LOGGING_ENABLED", true)
	v.SetDefault("PYROSCOPE_SERVER_ADDRESS", "")

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	// Older deployments export the connection string as MONGODB.
	if err := v.BindEnv("MONGO_URI", "MONGO_URI", "MONGODB"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set
func (c Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return errors.New("APP_PORT must be between 1 and 65535")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 16 {
		return errors.New("BCRYPT_COST must be between 4 and 16")
	}
	if c.LoginRatePerMin < 1 {
		return errors.New("LOGIN_RATE_PER_MIN must be greater than or equal to 1")
	}
	if c.LogLevel == "" {
		return errors.New("LOG_LEVEL cannot be empty")
	}
	if c.LogFormat == "" {
		return errors.New("LOG_FORMAT cannot be empty")
	}
	if c.MongoURI == "" {
		return errors.New("MONGO_URI cannot be empty")
	}
	if c.MongoDBName == "" {
		return errors.New("MONGO_DB_NAME cannot be empty")
	}
	if c.AuthHeader == "" {
		return errors.New("AUTH_HEADER cannot be empty")
	}
	if c.PageSize <= 0 {
		return errors.New("PAGE_SIZE must be greater than 0")
	}
	if c.ListLimit <= 0 {
		return errors.New("LIST_LIMIT must be greater than 0")
	}
	if c.WoodfordDevice == "" {
		return errors.New("WOODFORD_DEVICE cannot be empty")
	}
	if c.RainWindowMonths <= 0 {
		return errors.New("RAIN_WINDOW_MONTHS must be greater than 0")
	}
	return nil
}
