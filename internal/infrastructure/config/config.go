package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
	Ledger    LedgerConfig
	Policy    PolicyConfig
	Approval  ApprovalConfig
	Kafka     KafkaConfig
	Sink      SinkConfig
	Metrics   MetricsConfig
	Swagger   SwaggerConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
	AutoMigrate     bool
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int
	MaxBodySize     int64
	TrustedProxies  []string
	// RateLimit caps requests per tenant per RateLimitWindow; zero disables it
	RateLimit       int
	RateLimitWindow time.Duration
	CORSOrigins     []string
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool    // Whether to enable OpenTelemetry
	CollectorEndpoint string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio     float64 // Sampling ratio (0.0-1.0, 1.0 = 100%)
	ServiceName       string  // Service name for traces
	Insecure          bool    // Use insecure (non-TLS) connection (development only)
	// Database tracing options
	DBTraceEnabled    bool          // Enable database query tracing (otelgorm)
	DBLogFullSQL      bool          // Log full SQL statements (dev only)
	DBSlowQueryThresh time.Duration // Slow query threshold for warnings (default: 200ms)
}

// LedgerConfig holds commission ledger and event intake settings
type LedgerConfig struct {
	DefaultHoldDays  int
	ConfirmEnabled   bool
	ConfirmInterval  time.Duration
	ConfirmBatchSize int
	DedupBackend     string // memory, redis
	DedupTTL         time.Duration
	DedupCapacity    int
	EventScope       string // routing scope payment events are published under
}

// PolicyConfig holds commission policy constraints
type PolicyConfig struct {
	// RateCaps maps a policy type to its maximum rate in percent
	RateCaps map[string]decimal.Decimal
}

// ApprovalConfig holds approval workflow settings
type ApprovalConfig struct {
	CooldownDays int
}

// Cooldown returns the seller re-request cooldown
func (a ApprovalConfig) Cooldown() time.Duration {
	return time.Duration(a.CooldownDays) * 24 * time.Hour
}

// KafkaConfig holds settings for forwarding settlement events
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// SinkConfig holds settings for the external accounting sink
type SinkConfig struct {
	Enabled         bool
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	PurchaseAccount string
	PaymentAccount  string
	RetryInterval   time.Duration
	// PendingStaleAfter is how long a claimed voucher may stay pending before it is retried
	PendingStaleAfter time.Duration
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled   bool
	Path      string
	Namespace string
}

// SwaggerConfig controls the /swagger API documentation endpoint
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string // IP or CIDR allowlist (empty = allow all)
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with LEDGER_ prefix (e.g., LEDGER_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rateCaps, err := parseRateCaps(v.GetStringMap("policy.rate_caps"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
			AutoMigrate:     v.GetBool("database.auto_migrate"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			IdleTimeout:     v.GetDuration("http.idle_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:  v.GetInt("http.max_header_bytes"),
			MaxBodySize:     v.GetInt64("http.max_body_size"),
			TrustedProxies:  v.GetStringSlice("http.trusted_proxies"),
			RateLimit:       v.GetInt("http.rate_limit"),
			RateLimitWindow: v.GetDuration("http.rate_limit_window"),
			CORSOrigins:     v.GetStringSlice("http.cors_origins"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
			DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
			DBLogFullSQL:      v.GetBool("telemetry.db_log_full_sql"),
			DBSlowQueryThresh: v.GetDuration("telemetry.db_slow_query_threshold"),
		},
		Ledger: LedgerConfig{
			DefaultHoldDays:  v.GetInt("ledger.default_hold_days"),
			ConfirmEnabled:   v.GetBool("ledger.confirm_enabled"),
			ConfirmInterval:  v.GetDuration("ledger.confirm_interval"),
			ConfirmBatchSize: v.GetInt("ledger.confirm_batch_size"),
			DedupBackend:     v.GetString("ledger.dedup_backend"),
			DedupTTL:         v.GetDuration("ledger.dedup_ttl"),
			DedupCapacity:    v.GetInt("ledger.dedup_capacity"),
			EventScope:       v.GetString("ledger.event_scope"),
		},
		Policy: PolicyConfig{
			RateCaps: rateCaps,
		},
		Approval: ApprovalConfig{
			CooldownDays: v.GetInt("approval.cooldown_days"),
		},
		Kafka: KafkaConfig{
			Enabled:      v.GetBool("kafka.enabled"),
			Brokers:      v.GetStringSlice("kafka.brokers"),
			Topic:        v.GetString("kafka.topic"),
			WriteTimeout: v.GetDuration("kafka.write_timeout"),
		},
		Sink: SinkConfig{
			Enabled:         v.GetBool("sink.enabled"),
			BaseURL:         v.GetString("sink.base_url"),
			APIKey:          v.GetString("sink.api_key"),
			Timeout:         v.GetDuration("sink.timeout"),
			PurchaseAccount: v.GetString("sink.purchase_account"),
			PaymentAccount:  v.GetString("sink.payment_account"),
			RetryInterval:   v.GetDuration("sink.retry_interval"),

			PendingStaleAfter: v.GetDuration("sink.pending_stale_after"),
		},
		Metrics: MetricsConfig{
			Enabled:   v.GetBool("metrics.enabled"),
			Path:      v.GetString("metrics.path"),
			Namespace: v.GetString("metrics.namespace"),
		},
		Swagger: SwaggerConfig{
			Enabled:    v.GetBool("swagger.enabled"),
			AllowedIPs: v.GetStringSlice("swagger.allowed_ips"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseRateCaps reads the policy.rate_caps table; TOML gives floats or integers
func parseRateCaps(raw map[string]any) (map[string]decimal.Decimal, error) {
	caps := make(map[string]decimal.Decimal, len(raw))
	for policyType, value := range raw {
		d, err := decimal.NewFromString(fmt.Sprint(value))
		if err != nil {
			return nil, fmt.Errorf("policy.rate_caps.%s: %w", policyType, err)
		}
		caps[strings.ToLower(policyType)] = d
	}
	return caps, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "ledger-service"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "ledger"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 30 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.DBSlowQueryThresh == 0 {
		cfg.Telemetry.DBSlowQueryThresh = 200 * time.Millisecond
	}
	if cfg.Ledger.DefaultHoldDays == 0 {
		cfg.Ledger.DefaultHoldDays = 7
	}
	if cfg.Ledger.ConfirmInterval == 0 {
		cfg.Ledger.ConfirmInterval = 10 * time.Minute
	}
	if cfg.Ledger.ConfirmBatchSize == 0 {
		cfg.Ledger.ConfirmBatchSize = 200
	}
	if cfg.Ledger.DedupBackend == "" {
		cfg.Ledger.DedupBackend = "memory"
	}
	if cfg.Ledger.DedupTTL == 0 {
		cfg.Ledger.DedupTTL = time.Hour
	}
	if cfg.Ledger.DedupCapacity == 0 {
		cfg.Ledger.DedupCapacity = 10000
	}
	if cfg.Ledger.EventScope == "" {
		cfg.Ledger.EventScope = "ledger"
	}
	if cfg.Policy.RateCaps == nil {
		cfg.Policy.RateCaps = map[string]decimal.Decimal{}
	}
	if cfg.Approval.CooldownDays == 0 {
		cfg.Approval.CooldownDays = 30
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "settlement.closed"
	}
	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}
	if cfg.Sink.Timeout == 0 {
		cfg.Sink.Timeout = 10 * time.Second
	}
	if cfg.Sink.PurchaseAccount == "" {
		cfg.Sink.PurchaseAccount = "5100"
	}
	if cfg.Sink.PaymentAccount == "" {
		cfg.Sink.PaymentAccount = "2100"
	}
	if cfg.Sink.RetryInterval == 0 {
		cfg.Sink.RetryInterval = 15 * time.Minute
	}
	if cfg.Sink.PendingStaleAfter == 0 {
		cfg.Sink.PendingStaleAfter = 5 * time.Minute
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "ledger"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("http.rate_limit cannot be negative")
	}

	if c.Ledger.DefaultHoldDays < 0 {
		return fmt.Errorf("ledger.default_hold_days cannot be negative")
	}
	switch c.Ledger.DedupBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("ledger.dedup_backend must be 'memory' or 'redis', got %q", c.Ledger.DedupBackend)
	}
	if c.Ledger.DedupCapacity < 0 {
		return fmt.Errorf("ledger.dedup_capacity cannot be negative")
	}
	if c.Approval.CooldownDays < 0 {
		return fmt.Errorf("approval.cooldown_days cannot be negative")
	}

	hundred := decimal.NewFromInt(100)
	for _, policyType := range c.Policy.SortedTypes() {
		rate := c.Policy.RateCaps[policyType]
		if rate.IsNegative() || rate.GreaterThan(hundred) {
			return fmt.Errorf("policy.rate_caps.%s must be between 0 and 100, got %s", policyType, rate.String())
		}
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	if c.Sink.Enabled && c.Sink.BaseURL == "" {
		return fmt.Errorf("sink.base_url is required when sink is enabled")
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if c.Telemetry.DBLogFullSQL {
			return fmt.Errorf("telemetry.db_log_full_sql must be false in production to prevent sensitive data exposure in traces")
		}
		if c.Swagger.Enabled && len(c.Swagger.AllowedIPs) == 0 {
			return fmt.Errorf("swagger endpoint must be disabled or have an IP restriction in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// SortedTypes returns the capped policy types in a stable order
func (p PolicyConfig) SortedTypes() []string {
	types := make([]string, 0, len(p.RateCaps))
	for t := range p.RateCaps {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
