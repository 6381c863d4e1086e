package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentBatchesQueryHandler lists shipment batches with their supplier
// name and attached line count. Non-admin approvers are restricted to the
// suppliers they hold grants for.
type GetShipmentBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentBatchesQueryHandler creates a handler for the batch listing.
func NewGetShipmentBatchesQueryHandler(db *gorm.DB) GetShipmentBatchesQueryHandler {
	return GetShipmentBatchesQueryHandler{db: db}
}

// Handle executes the listing. An approver without any grant gets an empty
// result, not an error.
func (h GetShipmentBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentBatchesQuery,
) ([]GetShipmentBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			b.id,
			b.supplier_id,
			s.name,
			b.delivery_date,
			b.status,
			b.sent_at,
			COUNT(l.id)
		FROM shipment_batches b
		JOIN suppliers s ON s.id = b.supplier_id
		LEFT JOIN order_lines l ON l.batch_id = b.id
		WHERE TRUE
	`
	args := make([]any, 0, 2)
	if !query.Actor().IsAdmin() {
		sqlQuery += `
			AND b.supplier_id IN (
				SELECT supplier_id FROM approver_suppliers WHERE approver_id = ?
			)
		`
		args = append(args, query.Actor().ID().Bytes())
	}
	if query.Status() != nil {
		sqlQuery += " AND b.status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += `
		GROUP BY b.id, b.supplier_id, s.name, b.delivery_date, b.status, b.sent_at
		ORDER BY b.delivery_date NULLS LAST, s.name, b.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]GetShipmentBatchesQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			supplierID   uuid.UUID
			supplierName string
			deliveryDate sql.NullTime
			status       string
			sentAt       sql.NullTime
			lineCount    int
		)
		if err = rows.Scan(&id, &supplierID, &supplierName, &deliveryDate, &status, &sentAt, &lineCount); err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		supID, idErr := kernel.UUIDFromBytes(supplierID[:])
		if idErr != nil {
			return nil, idErr
		}
		parsedStatus, stErr := shipment.StatusFromString(status)
		if stErr != nil {
			return nil, stErr
		}

		resp := GetShipmentBatchesQueryResponse{
			ID:           batchID,
			SupplierID:   supID,
			SupplierName: supplierName,
			Status:       parsedStatus,
			LineCount:    lineCount,
		}
		if deliveryDate.Valid {
			resp.DeliveryDate = &deliveryDate.Time
		}
		if sentAt.Valid {
			resp.SentAt = &sentAt.Time
		}
		batches = append(batches, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
