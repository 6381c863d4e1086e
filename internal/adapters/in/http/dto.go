package http

import (
	"encoding/json"
	"time"

	"ordering/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one line in an order create or add-line request.
type NewOrderLine struct {
	ArticleID string `json:"articleId"`
	Quantity  string `json:"quantity"`
	Note      string `json:"note"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	DepartmentID       string         `json:"departmentId"`
	DeliveryDate       *string        `json:"deliveryDate"`
	AdditionalArticles string         `json:"additionalArticles"`
	DeliveryNotes      string         `json:"deliveryNotes"`
	Lines              []NewOrderLine `json:"lines"`
}

// OrderPatch is the request body for updating an order header. A missing
// deliveryDate leaves the date unchanged; an explicit null clears it.
type OrderPatch struct {
	DeliveryDate       *json.RawMessage `json:"deliveryDate"`
	AdditionalArticles *string          `json:"additionalArticles"`
	DeliveryNotes      *string          `json:"deliveryNotes"`
}

// OrderLinePatch is the request body for updating an order line.
type OrderLinePatch struct {
	Quantity *string `json:"quantity"`
	Note     *string `json:"note"`
}

// SupplierAssignment is the request body for assigning a supplier to a line.
type SupplierAssignment struct {
	SupplierID string `json:"supplierId"`
}

// Order is one row in the order list response.
type Order struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"departmentId"`
	Status       string  `json:"status"`
	DeliveryDate *string `json:"deliveryDate"`
	DraftedAt    string  `json:"draftedAt"`
	LineCount    int     `json:"lineCount"`
}

// ShipmentBatch is one row in the batch list response.
type ShipmentBatch struct {
	ID           string  `json:"id"`
	SupplierID   string  `json:"supplierId"`
	SupplierName string  `json:"supplierName"`
	DeliveryDate *string `json:"deliveryDate"`
	Status       string  `json:"status"`
	SentAt       *string `json:"sentAt"`
	LineCount    int     `json:"lineCount"`
}

// ActivityRecord is one row in an entity's activity trail response.
type ActivityRecord struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	OldValue    *string `json:"oldValue"`
	NewValue    *string `json:"newValue"`
	RecordedAt  string  `json:"recordedAt"`
}

func orderFromResponse(r queries.GetOrdersQueryResponse) Order {
	return Order{
		ID:           r.ID.String(),
		DepartmentID: r.DepartmentID.String(),
		Status:       r.Status.String(),
		DeliveryDate: formatDate(r.DeliveryDate),
		DraftedAt:    r.DraftedAt.UTC().Format(time.RFC3339),
		LineCount:    r.LineCount,
	}
}

func batchFromResponse(r queries.GetShipmentBatchesQueryResponse) ShipmentBatch {
	return ShipmentBatch{
		ID:           r.ID.String(),
		SupplierID:   r.SupplierID.String(),
		SupplierName: r.SupplierName,
		DeliveryDate: formatDate(r.DeliveryDate),
		Status:       r.Status.String(),
		SentAt:       formatTimestamp(r.SentAt),
		LineCount:    r.LineCount,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
