package queries

import (
	"context"
	"database/sql"
	"time"

	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database, filtered to
// the actor's visible department radius. Soft-deleted orders are excluded.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for the order listing.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. For non-admins the department filter, when
// present, must itself lie inside the visible radius; a department outside
// the radius simply yields no rows.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	departmentIDs, err := h.visibleDepartmentIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	if departmentIDs != nil && len(departmentIDs) == 0 {
		return []GetOrdersQueryResponse{}, nil
	}

	sqlQuery := `
		SELECT
			o.id,
			o.department_id,
			o.status,
			o.delivery_date,
			o.drafted_at,
			COUNT(l.id)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.is_active
	`
	args := make([]any, 0, 2)
	if departmentIDs != nil {
		sqlQuery += " AND o.department_id IN ?"
		args = append(args, departmentIDs)
	}
	if query.Status() != nil {
		sqlQuery += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += `
		GROUP BY o.id, o.department_id, o.status, o.delivery_date, o.drafted_at
		ORDER BY o.drafted_at DESC, o.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			departmentID uuid.UUID
			status       string
			deliveryDate sql.NullTime
			draftedAt    time.Time
			lineCount    int
		)
		if err = rows.Scan(&id, &departmentID, &status, &deliveryDate, &draftedAt, &lineCount); err != nil {
			return nil, err
		}

		resp, mapErr := mapOrderRow(id, departmentID, status, deliveryDate, draftedAt, lineCount)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// visibleDepartmentIDs resolves the actor's radius to raw identifiers for
// the SQL filter. A nil slice means unrestricted (admin without a
// department filter).
func (h GetOrdersQueryHandler) visibleDepartmentIDs(
	ctx context.Context,
	query GetOrdersQuery,
) ([]uuid.UUID, error) {
	if query.Actor().IsAdmin() {
		if query.DepartmentID() == nil {
			return nil, nil
		}
		return []uuid.UUID{query.DepartmentID().Bytes()}, nil
	}

	tree, err := loadDepartmentTree(ctx, h.db)
	if err != nil {
		return nil, err
	}
	visible, err := tree.VisibleFrom(query.Actor().DepartmentID())
	if err != nil {
		return nil, err
	}

	if query.DepartmentID() != nil {
		if !visible.Contains(*query.DepartmentID()) {
			return []uuid.UUID{}, nil
		}
		return []uuid.UUID{query.DepartmentID().Bytes()}, nil
	}

	ids := make([]uuid.UUID, 0, len(visible))
	for id := range visible {
		ids = append(ids, id.Bytes())
	}
	return ids, nil
}

func mapOrderRow(
	id, departmentID uuid.UUID,
	status string,
	deliveryDate sql.NullTime,
	draftedAt time.Time,
	lineCount int,
) (GetOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	deptID, err := kernel.UUIDFromBytes(departmentID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	parsedStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	resp := GetOrdersQueryResponse{
		ID:           orderID,
		DepartmentID: deptID,
		Status:       parsedStatus,
		DraftedAt:    draftedAt,
		LineCount:    lineCount,
	}
	if deliveryDate.Valid {
		resp.DeliveryDate = &deliveryDate.Time
	}
	return resp, nil
}

// loadDepartmentTree reads the full department set and assembles the
// organizational tree. Shared by the query handlers.
func loadDepartmentTree(ctx context.Context, db *gorm.DB) (*department.Tree, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, name, parent_id, is_active
		FROM departments
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*department.Department, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			parentID *uuid.UUID
			isActive bool
		)
		if err = rows.Scan(&id, &name, &parentID, &isActive); err != nil {
			return nil, err
		}

		deptID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		var parent *kernel.UUID
		if parentID != nil {
			p, pErr := kernel.UUIDFromBytes(parentID[:])
			if pErr != nil {
				return nil, pErr
			}
			parent = &p
		}

		dept, deptErr := department.RestoreDepartment(deptID, name, parent, isActive)
		if deptErr != nil {
			return nil, deptErr
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return department.NewTree(departments)
}
