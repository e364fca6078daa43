package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"catering/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	PersistenceMemory   = "memory"
	PersistenceFile     = "file"
	PersistencePostgres = "postgres"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	PersistenceDriver string `envconfig:"PERSISTENCE_DRIVER" default:"file"`
	StoreFile         string `envconfig:"STORE_FILE"         default:"orders.json"`

	DBHost     string `envconfig:"DB_HOST"     default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT"     default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE"  default:"disable"`
	DBDriver   string `envconfig:"DB_DRIVER"   default:"pgx"`

	OrderIDPrefix    string `envconfig:"ORDER_ID_PREFIX"     default:"P"`
	OrderIDWidth     int    `envconfig:"ORDER_ID_WIDTH"      default:"3"`
	OrderMinLeadDays int    `envconfig:"ORDER_MIN_LEAD_DAYS" default:"0"`
	CatalogFile      string `envconfig:"CATALOG_FILE"`

	FlushSchedule  string `envconfig:"FLUSH_SCHEDULE"  default:"*/30 * * * * *"`
	ExportSchedule string `envconfig:"EXPORT_SCHEDULE"`
	ExportDir      string `envconfig:"EXPORT_DIR"      default:"exports"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// LoadConfig reads the given dotenv files (".env" when none are given) into the
// process environment and then decodes Config from it. Missing files are skipped
// and variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error

	switch c.PersistenceDriver {
	case PersistenceMemory, PersistenceFile:
	case PersistencePostgres:
		if c.DBName == "" {
			problems = append(problems, errors.New("DB_NAME is required for postgres persistence"))
		}
		if c.DBDriver != postgres.DriverPGX && c.DBDriver != postgres.DriverLibPQ {
			problems = append(problems, fmt.Errorf("DB_DRIVER must be %q or %q, got %q",
				postgres.DriverPGX, postgres.DriverLibPQ, c.DBDriver))
		}
	default:
		problems = append(problems, fmt.Errorf("PERSISTENCE_DRIVER must be memory, file or postgres, got %q", c.PersistenceDriver))
	}

	if c.PersistenceDriver == PersistenceFile && c.StoreFile == "" {
		problems = append(problems, errors.New("STORE_FILE is required for file persistence"))
	}
	if c.OrderMinLeadDays < 0 {
		problems = append(problems, fmt.Errorf("ORDER_MIN_LEAD_DAYS must not be negative, got %d", c.OrderMinLeadDays))
	}
	if c.ExportSchedule != "" && c.ExportDir == "" {
		problems = append(problems, errors.New("EXPORT_DIR is required when EXPORT_SCHEDULE is set"))
	}

	return errors.Join(problems...)
}

// Postgres returns the database settings.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
		Driver:   c.DBDriver,
	}
}
