// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between the aggregate (order plus
// lines) and its relational representation.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID       uuid.UUID  `gorm:"type:uuid;index"`
	CreatorID          uuid.UUID  `gorm:"type:uuid"`
	ApproverID         *uuid.UUID `gorm:"type:uuid"`
	DeliveryDate       *time.Time `gorm:"type:date"`
	Status             string     `gorm:"type:varchar(16);index"`
	AdditionalArticles string
	DeliveryNotes      string
	IsActive           bool       `gorm:"index"`
	DraftedAt          time.Time
	UpdatedAt          *time.Time
	Lines              []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row. BatchID references the shipment
// batch the line is grouped into; unrouted lines carry neither supplier nor
// batch.
type LineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	ArticleID  uuid.UUID       `gorm:"type:uuid"`
	SupplierID *uuid.UUID      `gorm:"type:uuid"`
	BatchID    *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity   decimal.Decimal `gorm:"type:numeric(12,3)"`
	Note       string
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, lineFromDomain(line))
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		DepartmentID:       aggregate.DepartmentID().Bytes(),
		CreatorID:          aggregate.CreatorID().Bytes(),
		ApproverID:         optionalUUID(aggregate.ApproverID()),
		DeliveryDate:       aggregate.DeliveryDate(),
		Status:             aggregate.Status().String(),
		AdditionalArticles: aggregate.AdditionalArticles(),
		DeliveryNotes:      aggregate.DeliveryNotes(),
		IsActive:           aggregate.IsActive(),
		DraftedAt:          aggregate.DraftedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Lines:              lines,
	}
}

func lineFromDomain(line *order.Line) LineDTO {
	return LineDTO{
		ID:         line.ID().Bytes(),
		OrderID:    line.OrderID().Bytes(),
		ArticleID:  line.ArticleID().Bytes(),
		SupplierID: optionalUUID(line.SupplierID()),
		BatchID:    optionalUUID(line.BatchID()),
		Quantity:   line.Quantity(),
		Note:       line.Note(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	departmentID, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}
	approverID, err := optionalKernelUUID(dto.ApproverID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, departmentID, creatorID, approverID,
		dto.DeliveryDate, status,
		dto.AdditionalArticles, dto.DeliveryNotes,
		dto.IsActive, dto.DraftedAt, dto.UpdatedAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	articleID, err := kernel.UUIDFromBytes(dto.ArticleID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := optionalKernelUUID(dto.SupplierID)
	if err != nil {
		return nil, err
	}
	batchID, err := optionalKernelUUID(dto.BatchID)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, orderID, articleID, supplierID, batchID, dto.Quantity, dto.Note)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
