package cmd

import (
	"log/slog"

	"supplychain/internal/adapters/out/odoo"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/syncrepo"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds the application's object graph: repositories over
// one shared GORM connection, command and query handlers, and background
// jobs. Each handler gets a fresh unit of work per invocation through the
// factory adapters below.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	syncClient ports.ProductSyncClient
	logger     *slog.Logger
}

// NewCompositionRoot wires the object graph from the loaded configuration
// and an open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	syncClient, err := odoo.NewClient(config.OdooBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		syncClient: syncClient,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(
		f,
		syncrepo.NewGormSyncCredentialRepository(c.gormDB),
		c.syncClient,
		c.logger,
	)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverShipmentCommandHandler() commands.DeliverShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateHireEmployeeCommandHandler() commands.HireEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHireEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateDismissEmployeeCommandHandler() commands.DismissEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDismissEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTrucksCommandHandler() commands.AssignTrucksCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTrucksCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterTruckCommandHandler() commands.RegisterTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job supervisor.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignTrucksCommandHandler(), c.logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}
