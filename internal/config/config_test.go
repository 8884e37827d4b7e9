package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// baseValidConfig returns a fully-valid configuration object that callers
// can tweak inside table tests.
func baseValidConfig() Config {
	return Config{
		AppPort:          8088,
		BcryptCost:       10,
		LoginRatePerMin:  10,
		LogLevel:         "info",
		LogFormat:        "json",
		MongoURI:         "mongodb://localhost:27017",
		MongoDBName:      "test",
		AuthHeader:       "authenticationKey",
		PageSize:         10,
		ListLimit:        100,
		WoodfordDevice:   "Woodford_Sensor",
		RainWindowMonths: 5,
	}
}

// clearConfigEnvVars removes every environment variable that the Config loader
// consumes so each test starts with a clean slate.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"APP_PORT",
		"BCRYPT_COST",
		"LOGIN_RATE_PER_MIN",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"MONGO_URI",
		"MONGODB",
		"MONGO_DB_NAME",
		"AUTH_HEADER",
		"PAGE_SIZE",
		"LIST_LIMIT",
		"WOODFORD_DEVICE",
		"RAIN_WINDOW_MONTHS",
		"CORS_ALLOW_ORIGINS",
		"ROUTE_METRICS_ENABLED",
		"REQUEST_LOGGING_ENABLED",
		"PYROSCOPE_SERVER_ADDRESS",
	} {
		if err := os.Unsetenv(k); err != nil {
			t.Logf("warning: failed to unset %s: %v", k, err)
		}
	}
}

func TestConfigLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	defer ResetCache()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.AppPort)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10, cfg.LoginRatePerMin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "weatherData", cfg.MongoDBName)
	assert.Equal(t, "authenticationKey", cfg.AuthHeader)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 100, cfg.ListLimit)
	assert.Equal(t, "Woodford_Sensor", cfg.WoodfordDevice)
	assert.Equal(t, 5, cfg.RainWindowMonths)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.True(t, cfg.RouteMetricsEnabled)
	assert.True(t, cfg.RequestLoggingEnabled)
	assert.Empty(t, cfg.PyroscopeAddress)
}

func TestConfigLoadFromEnv(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	defer ResetCache()

	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("ROUTE_METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 25, cfg.PageSize)
	assert.False(t, cfg.RouteMetricsEnabled)
}

func TestConfigLoadLegacyMongoEnv(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	defer ResetCache()

	t.Setenv("MONGODB", "mongodb://legacy:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.MongoURI)
}

func TestConfigLoadIsCached(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	defer ResetCache()

	first, err := Load()
	require.NoError(t, err)

	t.Setenv("APP_PORT", "7000")

	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first.AppPort, second.AppPort, "cached config should be returned")
}

func TestConfigLoadInvalidEnv(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	defer ResetCache()

	t.Setenv("PAGE_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.AppPort = 0 }, "APP_PORT"},
		{"port too high", func(c *Config) { c.AppPort = 70000 }, "APP_PORT"},
		{"bcrypt too low", func(c *Config) { c.BcryptCost = 3 }, "BCRYPT_COST"},
		{"bcrypt too high", func(c *Config) { c.BcryptCost = 17 }, "BCRYPT_COST"},
		{"login rate", func(c *Config) { c.LoginRatePerMin = 0 }, "LOGIN_RATE_PER_MIN"},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, "LOG_LEVEL"},
		{"empty log format", func(c *Config) { c.LogFormat = "" }, "LOG_FORMAT"},
		{"empty mongo uri", func(c *Config) { c.MongoURI = "" }, "MONGO_URI"},
		{"empty db name", func(c *Config) { c.MongoDBName = "" }, "MONGO_DB_NAME"},
		{"empty auth header", func(c *Config) { c.AuthHeader = "" }, "AUTH_HEADER"},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "PAGE_SIZE"},
		{"zero list limit", func(c *Config) { c.ListLimit = 0 }, "LIST_LIMIT"},
		{"empty woodford device", func(c *Config) { c.WoodfordDevice = "" }, "WOODFORD_DEVICE"},
		{"zero rain window", func(c *Config) { c.RainWindowMonths = 0 }, "RAIN_WINDOW_MONTHS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
