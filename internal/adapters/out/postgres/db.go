package postgres

import (
	"fmt"
	"net/url"
	"time"

	"catering/internal/adapters/out/postgres/orderrepo"

	// Registers the "postgres" database/sql driver used when Driver is DriverLibPQ.
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DriverPGX uses the pgx stdlib driver bundled with gorm.io/driver/postgres.
	DriverPGX = "pgx"
	// DriverLibPQ uses github.com/lib/pq.
	DriverLibPQ = "postgres"
)

// Config describes a PostgreSQL connection.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Driver   string

	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the connection as a postgres:// URL.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects with the configured driver and migrates the order tables.
func Open(cfg Config) (*gorm.DB, error) {
	return OpenDSN(cfg.Driver, cfg.DSN(), cfg.MaxOpenConns, cfg.ConnMaxLifetime)
}

// OpenDSN is Open for callers that already hold a connection string.
func OpenDSN(driver, dsn string, maxOpenConns int, connMaxLifetime time.Duration) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", DriverPGX:
		dialector = gorm_postgres.Open(dsn)
	case DriverLibPQ:
		dialector = gorm_postgres.New(gorm_postgres.Config{DriverName: DriverLibPQ, DSN: dsn})
	default:
		return nil, fmt.Errorf("unsupported postgres driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	if connMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(orderrepo.Models()...); err != nil {
		return fmt.Errorf("migrate order tables: %w", err)
	}
	return nil
}
