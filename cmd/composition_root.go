package cmd

import (
	"log/slog"
	"time"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/in/ws"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/locationrepo"
	"tracking/internal/auth"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
	"tracking/internal/realtime"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *realtime.Hub
	verifier   *auth.TokenVerifier
	accessGate services.AccessGate
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	verifier, err := auth.NewTokenVerifier(config.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        realtime.NewHub(),
		verifier:   verifier,
		accessGate: services.NewAccessGate(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

func (c *CompositionRoot) TokenVerifier() *auth.TokenVerifier {
	return c.verifier
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.accessGate, c.hub)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportLocationCommandHandler(f, c.accessGate, c.hub)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.accessGate)
}

func (c *CompositionRoot) CreateGetLatestLocationQueryHandler() queries.GetLatestLocationQueryHandler {
	return queries.NewGetLatestLocationQueryHandler(c.gormDB, c.accessGate)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateReportLocationCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetLatestLocationQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWebSocketHandler(sendBuffer int) *ws.Handler {
	getOrderHandler := c.CreateGetOrderQueryHandler()
	reportLocationHandler := c.CreateReportLocationCommandHandler()
	return ws.NewHandler(c.verifier, c.hub, getOrderHandler, &reportLocationHandler, sendBuffer)
}

func (c *CompositionRoot) CreateJobManager(locationRetention time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		locationrepo.NewGormLocationRepository(c.gormDB),
		locationRetention,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
