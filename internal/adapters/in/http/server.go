// Package http provides the inbound HTTP adapter.
// It translates echo requests into commands and queries and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/health"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID *string                  `json:"customerId,omitempty"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest references a catalog item and a quantity.
type CreateOrderItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// ItemRequest is the request body for catalog item creation.
type ItemRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// ItemResponse is the JSON representation of a catalog item.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// BatchDeleteRequest is the request body for batch catalog deletion.
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	itemRepo ports.ItemRepository
	health   *health.Health
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	itemRepo ports.ItemRepository,
	healthState *health.Health,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		itemRepo:           itemRepo,
		health:             healthState,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/cancel", s.CancelOrder)

	api.GET("/items", s.GetItems)
	api.GET("/items/:id", s.GetItem)
	api.POST("/items", s.CreateItem)
	api.POST("/items/batch", s.CreateItemsBatch)
	api.DELETE("/items/batch", s.DeleteItemsBatch)
	api.DELETE("/items/:id", s.DeleteItem)
}

// Root handles GET / - a minimal service banner.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"service": "orders",
		"status":  "running",
	})
}

// GetHealth handles GET /health - reports the background check results.
func (s *Server) GetHealth(ctx echo.Context) error {
	report := s.health.Snapshot()
	if !report.Healthy() || !s.health.IsReady() {
		return ctx.JSON(http.StatusServiceUnavailable, report)
	}
	return ctx.JSON(http.StatusOK, report)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var customerID *kernel.UUID
	if request.CustomerID != nil {
		id, err := kernel.UUIDFromString(*request.CustomerID)
		if err != nil {
			return badRequest(ctx, "Invalid customer ID: "+err.Error())
		}
		customerID = &id
	}

	items := make([]commands.OrderItem, 0, len(request.Items))
	for _, requested := range request.Items {
		itemID, err := kernel.UUIDFromString(requested.ItemID)
		if err != nil {
			return badRequest(ctx, "Invalid item ID: "+err.Error())
		}

		orderItem, err := commands.NewOrderItem(itemID, requested.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, orderItem)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - lists orders with an optional
// ?status= filter.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(statusFilter)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	responses, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel - cancels a pending
// order. An order that already left the pending state yields 409.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, err)
		case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrConcurrencyConflict):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return s.errorResponse(ctx, err)
		}
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItems handles GET /api/v1/items - lists the catalog.
func (s *Server) GetItems(ctx echo.Context) error {
	entities, err := s.itemRepo.GetAll(ctx.Request().Context())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	responses := make([]ItemResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, itemResponse(entity))
	}
	return ctx.JSON(http.StatusOK, responses)
}

// GetItem handles GET /api/v1/items/:id - retrieves a single catalog item.
func (s *Server) GetItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID: "+err.Error())
	}

	entity, err := s.itemRepo.Get(ctx.Request().Context(), id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponse(entity))
}

// CreateItem handles POST /api/v1/items - creates a catalog item.
func (s *Server) CreateItem(ctx echo.Context) error {
	var request ItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entity, err := item.NewItem(request.Name, request.Price, request.Description)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err := s.itemRepo.Add(ctx.Request().Context(), entity); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, itemResponse(entity))
}

// CreateItemsBatch handles POST /api/v1/items/batch - creates several catalog
// items at once. One invalid item rejects the whole request.
func (s *Server) CreateItemsBatch(ctx echo.Context) error {
	var requests []ItemRequest
	if err := ctx.Bind(&requests); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(requests) == 0 {
		return badRequest(ctx, "At least one item is required")
	}

	entities := make([]*item.Item, 0, len(requests))
	for _, request := range requests {
		entity, err := item.NewItem(request.Name, request.Price, request.Description)
		if err != nil {
			return badRequest(ctx, "Invalid item data: "+err.Error())
		}
		entities = append(entities, entity)
	}

	if err := s.itemRepo.AddBatch(ctx.Request().Context(), entities); err != nil {
		return s.errorResponse(ctx, err)
	}

	responses := make([]ItemResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, itemResponse(entity))
	}
	return ctx.JSON(http.StatusCreated, responses)
}

// DeleteItem handles DELETE /api/v1/items/:id - removes a catalog item.
func (s *Server) DeleteItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID: "+err.Error())
	}

	if err := s.itemRepo.Remove(ctx.Request().Context(), id); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteItemsBatch handles DELETE /api/v1/items/batch - removes several
// catalog items. Unknown IDs are ignored.
func (s *Server) DeleteItemsBatch(ctx echo.Context) error {
	var request BatchDeleteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(request.IDs) == 0 {
		return badRequest(ctx, "At least one item ID is required")
	}

	ids := make([]kernel.UUID, 0, len(request.IDs))
	for _, raw := range request.IDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid item ID: "+err.Error())
		}
		ids = append(ids, id)
	}

	if err := s.itemRepo.RemoveBatch(ctx.Request().Context(), ids); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps domain errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err)
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: err.Error(),
	})
}

func itemResponse(entity *item.Item) ItemResponse {
	return ItemResponse{
		ID:          entity.ID().String(),
		Name:        entity.Name(),
		Price:       entity.Price(),
		Description: entity.Description(),
	}
}
