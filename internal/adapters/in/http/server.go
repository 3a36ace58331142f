// Package http exposes the application's use cases over a REST API built on
// Echo. Request and response shapes are defined here; the handlers translate
// them into commands and queries and map domain errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProductRequest is the payload for product creation.
type NewProductRequest struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	CreatedBy         string  `json:"created_by,omitempty"`
}

// ProductResponse is one row of the product catalog read model.
type ProductResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Price                 float64 `json:"price"`
	AvailableQuantity     int     `json:"available_quantity"`
	TotalRequiredQuantity int     `json:"total_required_quantity"`
	TotalShipped          int     `json:"total_shipped"`
	Status                string  `json:"status"`
}

// NewOrderRequest is the payload for placing an order.
type NewOrderRequest struct {
	ProductID        string `json:"product_id"`
	RequiredQuantity int    `json:"required_quantity"`
}

// UpdateOrderRequest is the payload describing an order's target state.
type UpdateOrderRequest struct {
	ProductID        string `json:"product_id"`
	RequiredQuantity int    `json:"required_quantity"`
	Status           string `json:"status"`
}

// OrderResponse is one row of the active order read model.
type OrderResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	RequiredQuantity int    `json:"required_quantity"`
	Status           string `json:"status"`
}

// NewShipmentRequest is the payload for creating a shipment.
type NewShipmentRequest struct {
	OrderID    string `json:"order_id"`
	EmployeeID string `json:"employee_id"`
}

// NewEmployeeRequest is the payload for hiring an employee.
type NewEmployeeRequest struct {
	UserID  string `json:"user_id"`
	Contact string `json:"contact,omitempty"`
}

// NewTruckRequest is the payload for registering a truck.
type NewTruckRequest struct {
	PlateNumber string `json:"plate_number"`
}

// CreatedResponse echoes the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Server wires HTTP endpoints to the application's command and query handlers.
type Server struct {
	// Command handlers
	createProductHandler   commands.CreateProductCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	createShipmentHandler  commands.CreateShipmentCommandHandler
	deliverShipmentHandler commands.DeliverShipmentCommandHandler
	hireEmployeeHandler    commands.HireEmployeeCommandHandler
	dismissEmployeeHandler commands.DismissEmployeeCommandHandler
	registerTruckHandler   commands.RegisterTruckCommandHandler

	// Query handlers
	getProductsHandler     queries.GetProductsQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	deliverShipmentHandler commands.DeliverShipmentCommandHandler,
	hireEmployeeHandler commands.HireEmployeeCommandHandler,
	dismissEmployeeHandler commands.DismissEmployeeCommandHandler,
	registerTruckHandler commands.RegisterTruckCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createProductHandler:   createProductHandler,
		placeOrderHandler:      placeOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		createShipmentHandler:  createShipmentHandler,
		deliverShipmentHandler: deliverShipmentHandler,
		hireEmployeeHandler:    hireEmployeeHandler,
		dismissEmployeeHandler: dismissEmployeeHandler,
		registerTruckHandler:   registerTruckHandler,
		getProductsHandler:     getProductsHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)

	api.POST("/orders", s.PlaceOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.GET("/orders/active", s.GetActiveOrders)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:shipmentId/deliver", s.DeliverShipment)

	api.POST("/employees", s.HireEmployee)
	api.DELETE("/employees/:employeeId", s.DismissEmployee)

	api.POST("/trucks", s.RegisterTruck)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var createdBy *kernel.UUID
	if req.CreatedBy != "" {
		userID, err := kernel.UUIDFromString(req.CreatedBy)
		if err != nil {
			return badRequest(ctx, "Invalid created_by: "+err.Error())
		}
		createdBy = &userID
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, req.Name, req.Price, req.AvailableQuantity, createdBy)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to create product", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:                    p.ID.String(),
			Name:                  p.Name,
			Price:                 p.Price,
			AvailableQuantity:     p.AvailableQuantity,
			TotalRequiredQuantity: p.TotalRequiredQuantity,
			TotalShipped:          p.TotalShipped,
			Status:                p.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, productID, req.RequiredQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to place order", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id: "+err.Error())
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, productID, req.RequiredQuantity, status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to update order", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:               o.ID.String(),
			ProductID:        o.ProductID.String(),
			RequiredQuantity: o.RequiredQty,
			Status:           o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req NewShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id: "+err.Error())
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "Invalid employee_id: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, employeeID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to create shipment", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// DeliverShipment handles POST /api/v1/shipments/:shipmentId/deliver.
// Delivering an already delivered shipment succeeds without effect.
func (s *Server) DeliverShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID: "+err.Error())
	}

	cmd, err := commands.NewDeliverShipmentCommand(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.deliverShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to deliver shipment", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HireEmployee handles POST /api/v1/employees.
func (s *Server) HireEmployee(ctx echo.Context) error {
	var req NewEmployeeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewHireEmployeeCommand(employeeID, userID, req.Contact)
	if err != nil {
		return badRequest(ctx, "Invalid employee data: "+err.Error())
	}

	if err = s.hireEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to hire employee", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: employeeID.String()})
}

// DismissEmployee handles DELETE /api/v1/employees/:employeeId.
func (s *Server) DismissEmployee(ctx echo.Context) error {
	employeeID, err := kernel.UUIDFromString(ctx.Param("employeeId"))
	if err != nil {
		return badRequest(ctx, "Invalid employee ID: "+err.Error())
	}

	cmd, err := commands.NewDismissEmployeeCommand(employeeID)
	if err != nil {
		return badRequest(ctx, "Invalid employee data: "+err.Error())
	}

	if err = s.dismissEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to dismiss employee", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterTruck handles POST /api/v1/trucks.
func (s *Server) RegisterTruck(ctx echo.Context) error {
	var req NewTruckRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	truckID := kernel.NewUUID()
	cmd, err := commands.NewRegisterTruckCommand(truckID, req.PlateNumber)
	if err != nil {
		return badRequest(ctx, "Invalid truck data: "+err.Error())
	}

	if err = s.registerTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, "Failed to register truck", err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: truckID.String()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps a failed command to a status code. Missing aggregates map
// to 404, validation failures to 422, everything else to 500.
func domainError(ctx echo.Context, message string, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
