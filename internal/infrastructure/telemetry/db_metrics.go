package telemetry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// DBMetricsConfig holds configuration for database metrics collection
type DBMetricsConfig struct {
	Enabled bool
	DBName  string
	// SlowQueryThreshold marks queries counted as slow; zero means 200ms
	SlowQueryThreshold time.Duration
}

// DBMetricsPlugin is a GORM plugin counting queries per operation and table on
// the ledger registry
type DBMetricsPlugin struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	slow     *prometheus.CounterVec
	errors   *prometheus.CounterVec
	slowAt   time.Duration
}

type dbMetricsContextKey struct{}

// NewDBMetricsPlugin creates the query instruments and registers them on registry
func NewDBMetricsPlugin(registry prometheus.Registerer, namespace string, cfg DBMetricsConfig) (*DBMetricsPlugin, error) {
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}
	slowAt := cfg.SlowQueryThreshold
	if slowAt <= 0 {
		slowAt = 200 * time.Millisecond
	}
	p := &DBMetricsPlugin{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Database statements by operation and table.",
		}, []string{"operation", "table"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database statement latency by operation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),
		slow: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_slow_queries_total",
			Help:      "Database statements slower than the configured threshold.",
		}, []string{"table"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Database statements that returned an error other than not found.",
		}, []string{"operation", "table"}),
		slowAt: slowAt,
	}
	for _, c := range []prometheus.Collector{p.queries, p.duration, p.slow, p.errors} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register db metric: %w", err)
		}
	}
	return p, nil
}

// Name returns the plugin name
func (p *DBMetricsPlugin) Name() string {
	return "ledger:db_metrics"
}

// Initialize registers the before and after callbacks of every statement kind
func (p *DBMetricsPlugin) Initialize(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		ctx := tx.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		tx.Statement.Context = context.WithValue(ctx, dbMetricsContextKey{}, time.Now())
	}
	fixed := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) { p.record(tx, operation) }
	}
	detect := func(tx *gorm.DB) { p.record(tx, detectOperationType(tx.Statement.SQL.String())) }

	cb := db.Callback()
	registrations := []error{
		cb.Create().Before("gorm:create").Register("db_metrics:before_create", before),
		cb.Create().After("gorm:create").Register("db_metrics:after_create", fixed("INSERT")),
		cb.Query().Before("gorm:query").Register("db_metrics:before_query", before),
		cb.Query().After("gorm:query").Register("db_metrics:after_query", fixed("SELECT")),
		cb.Update().Before("gorm:update").Register("db_metrics:before_update", before),
		cb.Update().After("gorm:update").Register("db_metrics:after_update", fixed("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("db_metrics:before_delete", before),
		cb.Delete().After("gorm:delete").Register("db_metrics:after_delete", fixed("DELETE")),
		cb.Row().Before("gorm:row").Register("db_metrics:before_row", before),
		cb.Row().After("gorm:row").Register("db_metrics:after_row", detect),
		cb.Raw().Before("gorm:raw").Register("db_metrics:before_raw", before),
		cb.Raw().After("gorm:raw").Register("db_metrics:after_raw", detect),
	}
	for _, err := range registrations {
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *DBMetricsPlugin) record(tx *gorm.DB, operation string) {
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	p.queries.WithLabelValues(operation, table).Inc()
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		p.errors.WithLabelValues(operation, table).Inc()
	}

	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	start, ok := ctx.Value(dbMetricsContextKey{}).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	p.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if elapsed > p.slowAt {
		p.slow.WithLabelValues(table).Inc()
	}
}

// detectOperationType reads the statement kind of row and raw queries
func detectOperationType(sql string) string {
	sql = strings.TrimSpace(strings.ToUpper(sql))
	for _, op := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sql, op) {
			return op
		}
	}
	return "OTHER"
}

// RegisterDBMetrics installs the query plugin on db and exports the connection
// pool statistics of its sql.DB on the ledger registry
func RegisterDBMetrics(db *gorm.DB, m *LedgerMetrics, namespace string, cfg DBMetricsConfig) error {
	if !cfg.Enabled || m == nil {
		return nil
	}
	plugin, err := NewDBMetricsPlugin(m.Registry(), namespace, cfg)
	if err != nil {
		return err
	}
	if err := db.Use(plugin); err != nil {
		return fmt.Errorf("failed to register db metrics plugin: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := m.Registry().Register(collectors.NewDBStatsCollector(sqlDB, cfg.DBName)); err != nil {
		return fmt.Errorf("failed to register pool collector: %w", err)
	}
	return nil
}
