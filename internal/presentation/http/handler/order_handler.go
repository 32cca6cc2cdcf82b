package handler

import (
	"strconv"
	"time"

	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/config"
	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/chatchaiw/apparel-api/internal/domain/repository"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/request"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/response"
	"github.com/chatchaiw/apparel-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	vatDefault   bool
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, pricingCfg config.PricingConfig) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		vatDefault:   pricingCfg.VATIncludedDefault,
	}
}

// buildOrderInput maps a request body onto the service input
func (h *OrderHandler) buildOrderInput(req *request.CreateOrderRequest, userID *uuid.UUID) (*service.CreateOrderInput, error) {
	vatIncluded := h.vatDefault
	if req.IsVATIncluded != nil {
		vatIncluded = *req.IsVATIncluded
	}

	input := &service.CreateOrderInput{
		Customer: service.CustomerInput{
			Name:           req.Customer.Name,
			CustomerCode:   req.Customer.CustomerCode,
			Phone:          req.Customer.Phone,
			ContactChannel: req.Customer.ContactChannel,
			Address:        req.Customer.Address,
		},
		ShippingCost:   req.ShippingCost,
		AddOnCost:      req.AddOnCost,
		DiscountAmount: req.DiscountAmount,
		DesignFee:      req.DesignFee,
		VATIncluded:    vatIncluded,
		Deposit1:       req.Deposit1,
		Deposit2:       req.Deposit2,
		UrgencyLevel:   enum.UrgencyLevel(req.UrgencyLevel),
		GraphicCode:    req.GraphicCode,
		Status:         enum.OrderStatus(req.Status),
		CreatedByID:    userID,
	}

	if req.DeadlineDate != nil && *req.DeadlineDate != "" {
		deadline, err := time.Parse("2006-01-02", *req.DeadlineDate)
		if err != nil {
			return nil, err
		}
		input.DeadlineDate = &deadline
	}

	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderLineInput{
			ProductName:    item.ProductName,
			ProductClass:   item.ProductClass,
			FabricType:     item.FabricType,
			NeckType:       item.NeckType,
			SleeveType:     item.SleeveType,
			QuantityBySize: item.QuantityMatrix,
			SelectedAddOns: item.SelectedAddOns,
			IsOversize:     item.IsOversize,
			UnitCost:       item.CostPerUnit,
			UnitPrice:      item.PricePerUnit,
		})
	}

	return input, nil
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildOrderInput(&req, GetUserID(c))
	if err != nil {
		response.BadRequest(c, "Invalid deadline date, expected YYYY-MM-DD")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Update handles updating an order, reconciling its lines
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := h.buildOrderInput(&req, GetUserID(c))
	if err != nil {
		response.BadRequest(c, "Invalid deadline date, expected YYYY-MM-DD")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), &service.UpdateOrderInput{
		ID:               id,
		CreateOrderInput: *input,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Get handles retrieving an order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Status: enum.OrderStatus(c.Query("status")),
		Search: c.Query("search"),
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// UpdateStatus handles moving an order to a new status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.OrderStatus(req.Status), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// AuditLogs handles listing an order's change history
func (h *OrderHandler) AuditLogs(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	logs, err := h.orderService.ListOrderAuditLogs(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Audit logs retrieved successfully", logs)
}
