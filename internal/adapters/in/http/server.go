// Package http exposes the ordering use cases over a JSON REST API. The
// gateway in front of this service authenticates callers and forwards their
// identity in headers; handlers here only translate requests into commands
// and queries.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/shipment"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Identity headers set by the authenticating gateway.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserRole     = "X-User-Role"
	HeaderDepartmentID = "X-Department-Id"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	closeOrderHandler         commands.CloseOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	addOrderLineHandler       commands.AddOrderLineCommandHandler
	updateOrderLineHandler    commands.UpdateOrderLineCommandHandler
	removeOrderLineHandler    commands.RemoveOrderLineCommandHandler
	assignLineSupplierHandler commands.AssignLineSupplierCommandHandler
	releaseBatchHandler       commands.ReleaseShipmentBatchCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getShipmentBatchesHandler queries.GetShipmentBatchesQueryHandler
	getOrderActivityHandler   queries.GetOrderActivityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	updateOrderLineHandler commands.UpdateOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	assignLineSupplierHandler commands.AssignLineSupplierCommandHandler,
	releaseBatchHandler commands.ReleaseShipmentBatchCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getShipmentBatchesHandler queries.GetShipmentBatchesQueryHandler,
	getOrderActivityHandler queries.GetOrderActivityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		closeOrderHandler:         closeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		addOrderLineHandler:       addOrderLineHandler,
		updateOrderLineHandler:    updateOrderLineHandler,
		removeOrderLineHandler:    removeOrderLineHandler,
		assignLineSupplierHandler: assignLineSupplierHandler,
		releaseBatchHandler:       releaseBatchHandler,
		getOrdersHandler:          getOrdersHandler,
		getShipmentBatchesHandler: getShipmentBatchesHandler,
		getOrderActivityHandler:   getOrderActivityHandler,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.POST("/orders/:orderId/close", s.CloseOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/:orderId/activity", s.GetOrderActivity)
	api.POST("/orders/:orderId/lines", s.AddOrderLine)

	api.PATCH("/order-lines/:lineId", s.UpdateOrderLine)
	api.DELETE("/order-lines/:lineId", s.RemoveOrderLine)
	api.POST("/order-lines/:lineId/supplier", s.AssignLineSupplier)

	api.GET("/shipment-batches", s.GetShipmentBatches)
	api.POST("/shipment-batches/:batchId/release", s.ReleaseShipmentBatch)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	departmentID, err := kernel.UUIDFromString(body.DepartmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	deliveryDate, err := parseOptionalDate(body.DeliveryDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lines := make([]commands.LineInput, 0, len(body.Lines))
	for _, l := range body.Lines {
		input, lineErr := lineInputFromBody(l)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		lines = append(lines, input)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor, departmentID, deliveryDate,
		body.AdditionalArticles, body.DeliveryNotes, lines,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return errorJSON(ctx, parseErr)
		}
		status = &parsed
	}

	var departmentID *kernel.UUID
	if raw := ctx.QueryParam("departmentId"); raw != "" {
		parsed, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return errorJSON(ctx, parseErr)
		}
		departmentID = &parsed
	}

	query, err := queries.NewGetOrdersQuery(actor, status, departmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	deliveryDate, err := parseDatePatch(body.DeliveryDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor, deliveryDate, body.AdditionalArticles, body.DeliveryNotes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CloseOrder handles POST /api/v1/orders/:orderId/close.
func (s *Server) CloseOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID, actor staff.User) error {
		cmd, err := commands.NewCloseOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.closeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID, actor staff.User) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetOrderActivity handles GET /api/v1/orders/:orderId/activity.
func (s *Server) GetOrderActivity(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderActivityQuery(actor, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	records, err := s.getOrderActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ActivityRecord, len(records))
	for i, r := range records {
		response[i] = ActivityRecord{
			ID:          r.ID.String(),
			UserID:      r.UserID.String(),
			Kind:        r.Kind,
			Description: r.Description,
			OldValue:    r.OldValue,
			NewValue:    r.NewValue,
			RecordedAt:  r.RecordedAt.UTC().Format(time.RFC3339),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddOrderLine handles POST /api/v1/orders/:orderId/lines.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body NewOrderLine
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	input, err := lineInputFromBody(body)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(lineID, actor, orderID, input.ArticleID, input.Quantity, input.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": lineID.String()})
}

// UpdateOrderLine handles PATCH /api/v1/order-lines/:lineId.
func (s *Server) UpdateOrderLine(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body OrderLinePatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var quantity *decimal.Decimal
	if body.Quantity != nil {
		parsed, parseErr := decimal.NewFromString(*body.Quantity)
		if parseErr != nil {
			return errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("quantity", parseErr))
		}
		quantity = &parsed
	}

	cmd, err := commands.NewUpdateOrderLineCommand(lineID, actor, quantity, body.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.updateOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderLine handles DELETE /api/v1/order-lines/:lineId.
func (s *Server) RemoveOrderLine(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderLineCommand(lineID, actor)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignLineSupplier handles POST /api/v1/order-lines/:lineId/supplier.
func (s *Server) AssignLineSupplier(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var body SupplierAssignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAssignLineSupplierCommand(lineID, actor, supplierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.assignLineSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentBatches handles GET /api/v1/shipment-batches.
func (s *Server) GetShipmentBatches(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := shipment.StatusFromString(raw)
		if parseErr != nil {
			return errorJSON(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetShipmentBatchesQuery(actor, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	batches, err := s.getShipmentBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ShipmentBatch, len(batches))
	for i, b := range batches {
		response[i] = batchFromResponse(b)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReleaseShipmentBatch handles POST /api/v1/shipment-batches/:batchId/release.
func (s *Server) ReleaseShipmentBatch(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	batchID, err := kernel.UUIDFromString(ctx.Param("batchId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewReleaseShipmentBatchCommand(batchID, actor)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.releaseBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// orderTransition factors the shared shape of close and cancel.
func (s *Server) orderTransition(ctx echo.Context, run func(kernel.UUID, staff.User) error) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = run(orderID, actor); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// actorFromHeaders builds the acting user from the gateway identity headers.
func actorFromHeaders(ctx echo.Context) (staff.User, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return staff.User{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}
	role, err := staff.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return staff.User{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole, err)
	}
	departmentID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderDepartmentID))
	if err != nil {
		return staff.User{}, errs.NewValueIsInvalidErrorWithCause(HeaderDepartmentID, err)
	}

	return staff.NewUser(userID, role, departmentID)
}

func lineInputFromBody(body NewOrderLine) (commands.LineInput, error) {
	articleID, err := kernel.UUIDFromString(body.ArticleID)
	if err != nil {
		return commands.LineInput{}, err
	}
	quantity, err := decimal.NewFromString(body.Quantity)
	if err != nil {
		return commands.LineInput{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}

	return commands.LineInput{
		LineID:    kernel.NewUUID(),
		ArticleID: articleID,
		Quantity:  quantity,
		Note:      body.Note,
	}, nil
}

// parseOptionalDate parses a nullable YYYY-MM-DD field.
func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.DateOnly, *raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	return &parsed, nil
}

// parseDatePatch distinguishes an absent deliveryDate (no change) from an
// explicit null (clear the date) and a value (set it).
func parseDatePatch(raw *json.RawMessage) (**time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	var value *string
	if err := json.Unmarshal(*raw, &value); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	date, err := parseOptionalDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps domain errors onto HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
