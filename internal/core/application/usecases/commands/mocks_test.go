package commands_test

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/reservation"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/core/domain/model/supplier"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDepartmentRepository struct{ mock.Mock }

func (m *MockDepartmentRepository) Get(_ context.Context, _ kernel.UUID) (*department.Department, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDepartmentRepository) GetAll(ctx context.Context) ([]*department.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*department.Department), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByLine(ctx context.Context, lineID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, lineID)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetAllByBatch(ctx context.Context, batchID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockArticleRepository struct{ mock.Mock }

func (m *MockArticleRepository) Get(ctx context.Context, id kernel.UUID) (*article.Article, error) {
	args := m.Called(ctx, id)
	if art, ok := args.Get(0).(*article.Article); ok {
		return art, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockArticleRepository) LinksByArticle(ctx context.Context, articleID kernel.UUID) ([]article.SupplierLink, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).([]article.SupplierLink), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if sup, ok := args.Get(0).(*supplier.Supplier); ok {
		return sup, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSupplierRepository) DeliveryDays(ctx context.Context, supplierID kernel.UUID) (supplier.WeekdaySet, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(supplier.WeekdaySet), args.Error(1)
}
func (m *MockSupplierRepository) HasApproverGrant(ctx context.Context, approverID, supplierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, approverID, supplierID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSupplierRepository) GrantedSupplierIDs(_ context.Context, _ kernel.UUID) ([]kernel.UUID, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, batch *shipment.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, batch *shipment.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Batch, error) {
	args := m.Called(ctx, id)
	if batch, ok := args.Get(0).(*shipment.Batch); ok {
		return batch, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockShipmentRepository) FindOpen(ctx context.Context, supplierID kernel.UUID, deliveryDate *time.Time) (*shipment.Batch, error) {
	args := m.Called(ctx, supplierID, deliveryDate)
	if batch, ok := args.Get(0).(*shipment.Batch); ok {
		return batch, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, record audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockAuditRepository) GetAllByEntity(_ context.Context, _ string, _ kernel.UUID) ([]audit.Record, error) {
	return nil, errors.New("not implemented in mock")
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Upsert(ctx context.Context, summary reservation.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}
func (m *MockReservationRepository) GetRange(_ context.Context, _, _ time.Time) ([]reservation.Summary, error) {
	return nil, errors.New("not implemented in mock")
}

type MockReservationFeed struct{ mock.Mock }

func (m *MockReservationFeed) Forecast(ctx context.Context, from, to time.Time) ([]reservation.Summary, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]reservation.Summary), args.Error(1)
}

type MockOrderingUoW struct{ mock.Mock }

func (m *MockOrderingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderingUoW) DepartmentRepository() ports.DepartmentRepository {
	args := m.Called()
	return args.Get(0).(ports.DepartmentRepository)
}
func (m *MockOrderingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderingUoW) ArticleRepository() ports.ArticleRepository {
	args := m.Called()
	return args.Get(0).(ports.ArticleRepository)
}
func (m *MockOrderingUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}
func (m *MockOrderingUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockOrderingUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockReservationUoW struct{ mock.Mock }

func (m *MockReservationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReservationUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReservationUoW)
}
