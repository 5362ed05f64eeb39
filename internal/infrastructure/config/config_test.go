package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the tests touch; viper ignores empty values
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LEDGER_APP_NAME", "LEDGER_APP_ENV", "LEDGER_APP_PORT",
		"LEDGER_DATABASE_HOST", "LEDGER_DATABASE_PORT", "LEDGER_DATABASE_PASSWORD",
		"LEDGER_DATABASE_SSLMODE", "LEDGER_DATABASE_MAX_OPEN_CONNS", "LEDGER_DATABASE_MAX_IDLE_CONNS",
		"LEDGER_LEDGER_DEDUP_BACKEND", "LEDGER_LEDGER_DEDUP_TTL", "LEDGER_LEDGER_DEFAULT_HOLD_DAYS",
		"LEDGER_HTTP_RATE_LIMIT", "LEDGER_APPROVAL_COOLDOWN_DAYS",
		"LEDGER_KAFKA_ENABLED", "LEDGER_KAFKA_BROKERS",
		"LEDGER_SINK_ENABLED", "LEDGER_SINK_BASE_URL",
		"LEDGER_TELEMETRY_SAMPLING_RATIO", "LEDGER_TELEMETRY_DB_LOG_FULL_SQL",
		"LEDGER_SWAGGER_ENABLED", "LEDGER_SWAGGER_ALLOWED_IPS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ledger-service", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ledger", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "memory", cfg.Ledger.DedupBackend)
		assert.Equal(t, time.Hour, cfg.Ledger.DedupTTL)
		assert.Equal(t, 10000, cfg.Ledger.DedupCapacity)
		assert.Equal(t, 7, cfg.Ledger.DefaultHoldDays)
		assert.Equal(t, 0, cfg.HTTP.RateLimit)
		assert.Equal(t, time.Minute, cfg.HTTP.RateLimitWindow)
		assert.Equal(t, 30, cfg.Approval.CooldownDays)
		assert.Equal(t, 30*24*time.Hour, cfg.Approval.Cooldown())
		assert.Equal(t, "settlement.closed", cfg.Kafka.Topic)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.NotNil(t, cfg.Policy.RateCaps)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	})

	t.Run("loads values from environment variables with LEDGER prefix", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_NAME", "test-ledger")
		t.Setenv("LEDGER_APP_PORT", "9000")
		t.Setenv("LEDGER_DATABASE_HOST", "testdb.local")
		t.Setenv("LEDGER_DATABASE_PORT", "5433")
		t.Setenv("LEDGER_LEDGER_DEDUP_BACKEND", "redis")
		t.Setenv("LEDGER_LEDGER_DEDUP_TTL", "30m")
		t.Setenv("LEDGER_LEDGER_DEFAULT_HOLD_DAYS", "14")
		t.Setenv("LEDGER_APPROVAL_COOLDOWN_DAYS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-ledger", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "redis", cfg.Ledger.DedupBackend)
		assert.Equal(t, 30*time.Minute, cfg.Ledger.DedupTTL)
		assert.Equal(t, 14, cfg.Ledger.DefaultHoldDays)
		assert.Equal(t, 10, cfg.Approval.CooldownDays)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("LEDGER_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown dedup backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_LEDGER_DEDUP_BACKEND", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger.dedup_backend")
	})

	t.Run("requires brokers when kafka is enabled", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_KAFKA_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kafka.brokers")
	})

	t.Run("requires base url when sink is enabled", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_SINK_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sink.base_url")
	})

	t.Run("rejects negative rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_HTTP_RATE_LIMIT", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http.rate_limit")
	})

	t.Run("rejects sampling ratio above one", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects full SQL logging in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")
		t.Setenv("LEDGER_TELEMETRY_DB_LOG_FULL_SQL", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db_log_full_sql")
	})

	t.Run("rejects an unrestricted swagger endpoint in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")
		t.Setenv("LEDGER_SWAGGER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger endpoint must be disabled or have an IP restriction")
	})

	t.Run("passes with swagger restricted to an allowlist in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")
		t.Setenv("LEDGER_SWAGGER_ENABLED", "true")
		t.Setenv("LEDGER_SWAGGER_ALLOWED_IPS", "10.0.0.0/8 192.168.1.10")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Swagger.Enabled)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Swagger.AllowedIPs)
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestParseRateCaps(t *testing.T) {
	t.Run("accepts floats and integers", func(t *testing.T) {
		caps, err := parseRateCaps(map[string]any{"Dropshipping": 2.0, "partner": int64(15)})
		require.NoError(t, err)
		assert.True(t, caps["dropshipping"].Equal(decimal.NewFromInt(2)))
		assert.True(t, caps["partner"].Equal(decimal.NewFromInt(15)))
	})

	t.Run("rejects non-numeric caps", func(t *testing.T) {
		_, err := parseRateCaps(map[string]any{"dropshipping": "two"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "policy.rate_caps.dropshipping")
	})
}

func TestConfig_ValidateRateCaps(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Policy.RateCaps = map[string]decimal.Decimal{"dropshipping": decimal.NewFromInt(120)}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 100")

	cfg.Policy.RateCaps["dropshipping"] = decimal.NewFromInt(2)
	assert.NoError(t, cfg.validate())
	assert.Equal(t, []string{"dropshipping"}, cfg.Policy.SortedTypes())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "user", Password: "pass@word#123", DBName: "db", SSLMode: "disable"}
		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}
