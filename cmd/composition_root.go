package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catering/api/openapi"
	httpadapter "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/catalogyaml"
	"catering/internal/adapters/out/csvexport"
	"catering/internal/adapters/out/filestore"
	"catering/internal/adapters/out/memory"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/store"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	clock  kernel.Clock

	gormDB      *gorm.DB
	persistence ports.OrderPersistence
	resolver    services.CatalogResolver
	engine      services.QueryEngine
	orderStore  *store.OrderStore
}

// NewCompositionRoot opens persistence, loads the catalog and the order
// collection. A nil clock means the system clock.
func NewCompositionRoot(ctx context.Context, cfg Config, clock kernel.Clock, logger *slog.Logger) (*CompositionRoot, error) {
	if clock == nil {
		clock = kernel.SystemClock()
	}

	c := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		engine: services.NewQueryEngine(),
	}

	cat, err := catalogyaml.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c.resolver = services.NewCatalogResolver(cat)

	ids, err := services.NewIDAllocator(cfg.OrderIDPrefix, cfg.OrderIDWidth)
	if err != nil {
		return nil, fmt.Errorf("order ids: %w", err)
	}

	if err := c.openPersistence(); err != nil {
		return nil, err
	}

	c.orderStore, err = store.NewOrderStore(ctx, c.persistence, c.resolver, ids, clock, logger, store.Config{
		MinLeadDays: cfg.OrderMinLeadDays,
	})
	if err != nil {
		return nil, errors.Join(err, c.closeDB())
	}

	return c, nil
}

func (c *CompositionRoot) openPersistence() error {
	switch c.cfg.PersistenceDriver {
	case PersistenceMemory:
		c.persistence = memory.NewStore()
	case PersistenceFile:
		fileStore, err := filestore.NewStore(c.cfg.StoreFile)
		if err != nil {
			return err
		}
		c.persistence = fileStore
	case PersistencePostgres:
		db, err := postgres.Open(c.cfg.Postgres())
		if err != nil {
			return err
		}
		c.gormDB = db
		c.persistence = postgres.NewSnapshotPersistence(postgres.NewGormUnitOfWorkFactory(db))
	default:
		return fmt.Errorf("unknown persistence driver %q", c.cfg.PersistenceDriver)
	}

	c.logger.Info("persistence ready", "driver", c.cfg.PersistenceDriver)
	return nil
}

// OrderStore exposes the store for shutdown flushing and tests.
func (c *CompositionRoot) OrderStore() *store.OrderStore {
	return c.orderStore
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderStore, c.engine)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderCountsQueryHandler() queries.GetOrderCountsQueryHandler {
	return queries.NewGetOrderCountsQueryHandler(c.orderStore, c.engine)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.orderStore, c.engine, csvexport.NewExporter())
}

func (c *CompositionRoot) CreateGetEligibleCatalogItemsQueryHandler() queries.GetEligibleCatalogItemsQueryHandler {
	return queries.NewGetEligibleCatalogItemsQueryHandler(c.resolver)
}

func (c *CompositionRoot) CreateCheckCatalogEligibilityQueryHandler() queries.CheckCatalogEligibilityQueryHandler {
	return queries.NewCheckCatalogEligibilityQueryHandler(c.resolver)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderStore, c.CreateExportOrdersQueryHandler(), jobs.Config{
		FlushSchedule:  c.cfg.FlushSchedule,
		ExportSchedule: c.cfg.ExportSchedule,
		ExportDir:      c.cfg.ExportDir,
	}, c.clock, c.logger)
}

// CreateRouter validates the embedded OpenAPI document and builds the HTTP router.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}
	specJSON, err := openapi.JSON(doc)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderCountsQueryHandler(),
		c.CreateExportOrdersQueryHandler(),
		c.CreateGetEligibleCatalogItemsQueryHandler(),
		c.CreateCheckCatalogEligibilityQueryHandler(),
	)
	return httpadapter.NewRouter(server, specJSON, c.logger), nil
}

// Close saves pending changes and releases the database connection.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var flushErr error
	if c.orderStore != nil {
		flushErr = c.orderStore.Flush(ctx)
	}
	return errors.Join(flushErr, c.closeDB())
}

func (c *CompositionRoot) closeDB() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
