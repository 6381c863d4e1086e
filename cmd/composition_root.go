package cmd

import (
	"log/slog"
	"time"

	"ordering/internal/adapters/out/holidaycal"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	feed       ports.ReservationFeed
	policy     services.OrderAccessPolicy
	router     services.ShipmentRouter
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, feed ports.ReservationFeed) CompositionRoot {
	calculator := services.NewDeliveryDateCalculator(holidaycal.NewSchleswigHolsteinCalendar())

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		feed:       feed,
		policy:     services.NewOrderAccessPolicy(),
		router:     services.NewShipmentRouter(calculator, time.Now),
	}
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderingUoWFactory(), c.policy, c.router)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderingUoWFactory(), c.policy, c.router)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.orderingUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderingUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	return commands.NewAddOrderLineCommandHandler(c.orderingUoWFactory(), c.policy, c.router)
}

func (c *CompositionRoot) CreateUpdateOrderLineCommandHandler() commands.UpdateOrderLineCommandHandler {
	return commands.NewUpdateOrderLineCommandHandler(c.orderingUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	return commands.NewRemoveOrderLineCommandHandler(c.orderingUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAssignLineSupplierCommandHandler() commands.AssignLineSupplierCommandHandler {
	return commands.NewAssignLineSupplierCommandHandler(c.orderingUoWFactory(), c.policy, c.router)
}

func (c *CompositionRoot) CreateReleaseShipmentBatchCommandHandler() commands.ReleaseShipmentBatchCommandHandler {
	return commands.NewReleaseShipmentBatchCommandHandler(c.orderingUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateSyncReservationsCommandHandler() commands.SyncReservationsCommandHandler {
	return commands.NewSyncReservationsCommandHandler(c.reservationUoWFactory(), c.feed)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentBatchesQueryHandler() queries.GetShipmentBatchesQueryHandler {
	return queries.NewGetShipmentBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderActivityQueryHandler() queries.GetOrderActivityQueryHandler {
	return queries.NewGetOrderActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSyncReservationsCommandHandler(), logger)
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}
