package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderActivityQueryHandler reads an order's audit trail straight from
// the database.
type GetOrderActivityQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderActivityQueryHandler creates a handler for the activity trail.
func NewGetOrderActivityQueryHandler(db *gorm.DB) GetOrderActivityQueryHandler {
	return GetOrderActivityQueryHandler{db: db}
}

// Handle executes the query. Non-admins may only read trails of orders whose
// department lies inside their visible radius.
func (h GetOrderActivityQueryHandler) Handle(
	ctx context.Context,
	query GetOrderActivityQuery,
) ([]GetOrderActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(ctx, query); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, kind, description, old_value, new_value, recorded_at
		FROM audit_records
		WHERE entity_type = 'order' AND entity_id = ?
		ORDER BY recorded_at DESC, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetOrderActivityQueryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			userID      uuid.UUID
			kind        string
			description string
			oldValue    sql.NullString
			newValue    sql.NullString
			recordedAt  time.Time
		)
		if err = rows.Scan(&id, &userID, &kind, &description, &oldValue, &newValue, &recordedAt); err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		actorID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetOrderActivityQueryResponse{
			ID:          recordID,
			UserID:      actorID,
			Kind:        kind,
			Description: description,
			RecordedAt:  recordedAt,
		}
		if oldValue.Valid {
			resp.OldValue = &oldValue.String
		}
		if newValue.Valid {
			resp.NewValue = &newValue.String
		}
		records = append(records, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// authorize resolves the order's department and checks it against the
// actor's visible radius.
func (h GetOrderActivityQueryHandler) authorize(ctx context.Context, query GetOrderActivityQuery) error {
	var departmentID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT department_id FROM orders WHERE id = ? AND is_active
	`, query.OrderID().Bytes()).Row().Scan(&departmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return err
	}

	if query.Actor().IsAdmin() {
		return nil
	}

	deptID, err := kernel.UUIDFromBytes(departmentID[:])
	if err != nil {
		return err
	}

	tree, err := loadDepartmentTree(ctx, h.db)
	if err != nil {
		return err
	}
	visible, err := tree.VisibleFrom(query.Actor().DepartmentID())
	if err != nil {
		return err
	}
	if !visible.Contains(deptID) {
		return errs.NewForbiddenError("order is outside the caller's department radius")
	}

	return nil
}
