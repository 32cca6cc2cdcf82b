package service

import (
	"context"
	"time"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/chatchaiw/apparel-api/internal/domain/repository"
	"github.com/chatchaiw/apparel-api/pkg/apperror"
	"github.com/chatchaiw/apparel-api/pkg/pagination"
	"github.com/chatchaiw/apparel-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService prices, persists, and reconciles production orders
type OrderService struct {
	orderRepo repository.OrderRepository
	auditRepo repository.AuditLogRepository
	customers *CustomerService
	catalog   pricing.Lookup
	priceBook *pricing.PriceBook
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
	customers *CustomerService,
	catalog pricing.Lookup,
	priceBook *pricing.PriceBook,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		customers: customers,
		catalog:   catalog,
		priceBook: priceBook,
	}
}

// OrderLineInput represents one requested garment line
type OrderLineInput struct {
	ProductName    string
	ProductClass   string
	FabricType     string
	NeckType       string
	SleeveType     string
	QuantityBySize map[string]int
	SelectedAddOns []string
	IsOversize     bool
	UnitCost       decimal.Decimal

	// UnitPrice, when set, is the caller's explicit price and overrides the
	// tier table. Honored only for lines priced fresh, never for lines whose
	// committed pricing is being preserved.
	UnitPrice *decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	Customer       CustomerInput
	Items          []OrderLineInput
	ShippingCost   decimal.Decimal
	AddOnCost      decimal.Decimal
	DiscountAmount decimal.Decimal
	DesignFee      decimal.Decimal
	VATIncluded    bool
	Deposit1       decimal.Decimal
	Deposit2       decimal.Decimal
	DeadlineDate   *time.Time
	UrgencyLevel   enum.UrgencyLevel
	GraphicCode    string
	Status         enum.OrderStatus
	CreatedByID    *uuid.UUID
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	ID uuid.UUID
	CreateOrderInput
}

func parseProductClass(s string) pricing.ProductClass {
	switch pricing.ProductClass(s) {
	case pricing.ProductClassShorts:
		return pricing.ProductClassShorts
	case pricing.ProductClassTrackPants:
		return pricing.ProductClassTrackPants
	}
	return pricing.ProductClassShirt
}

// priceLine resolves the catalog entry for a line and runs it through the
// calculator. An explicit caller price replaces the tier unit price and the
// line total is rebuilt around it.
func (s *OrderService) priceLine(ctx context.Context, in OrderLineInput) (*pricing.ComputedLine, error) {
	def, err := s.catalog.ResolveCategory(ctx, in.NeckType)
	if err != nil {
		return nil, err
	}

	requested := make([]pricing.AddOn, 0, len(in.SelectedAddOns))
	for _, a := range in.SelectedAddOns {
		requested = append(requested, pricing.AddOn(a))
	}

	line, err := s.priceBook.CalculateLine(pricing.LineRequest{
		ProductName:     in.ProductName,
		ProductClass:    parseProductClass(in.ProductClass),
		FabricType:      in.FabricType,
		CategoryName:    in.NeckType,
		SleeveType:      in.SleeveType,
		QuantityBySize:  in.QuantityBySize,
		RequestedAddOns: requested,
		IsOversize:      in.IsOversize,
		UnitCost:        in.UnitCost,
	}, def)
	if err != nil {
		return nil, err
	}

	if in.UnitPrice != nil && in.UnitPrice.IsPositive() && line.TotalQty > 0 {
		qty := decimal.NewFromInt(int64(line.TotalQty))
		line.UnitPrice = *in.UnitPrice
		line.TotalPrice = line.UnitPrice.Mul(qty).
			Add(line.AddOnTotal).
			Add(line.SizingSurcharge)
	}

	return line, nil
}

// itemFromLine converts a computed line into a persistable order item
func itemFromLine(line *pricing.ComputedLine) entity.OrderItem {
	addOns := make([]string, 0, len(line.AddOns))
	for _, a := range line.AddOns {
		addOns = append(addOns, string(a))
	}

	return entity.OrderItem{
		ProductName:         line.ProductName,
		ProductClass:        string(line.ProductClass),
		FabricType:          line.FabricType,
		NeckType:            line.CategoryName,
		SleeveType:          line.SleeveType,
		QuantityMatrix:      line.QuantityBySize,
		TotalQty:            line.TotalQty,
		SelectedAddOns:      addOns,
		IsOversize:          line.IsOversize,
		PricePerUnit:        line.UnitPrice,
		ItemAddonTotal:      line.AddOnTotal,
		ItemSizingSurcharge: line.SizingSurcharge,
		TotalPrice:          line.TotalPrice,
		CostPerUnit:         line.UnitCost,
		TotalCost:           line.TotalCost,
	}
}

// lineFromItem rebuilds the pricing view of a persisted item so preserved
// lines can flow through the aggregator unchanged.
func lineFromItem(item *entity.OrderItem) *pricing.ComputedLine {
	addOns := make([]pricing.AddOn, 0, len(item.SelectedAddOns))
	for _, a := range item.SelectedAddOns {
		addOns = append(addOns, pricing.AddOn(a))
	}

	return &pricing.ComputedLine{
		LineRequest: pricing.LineRequest{
			ProductName:    item.ProductName,
			ProductClass:   pricing.ProductClass(item.ProductClass),
			FabricType:     item.FabricType,
			CategoryName:   item.NeckType,
			SleeveType:     item.SleeveType,
			QuantityBySize: item.QuantityMatrix,
			IsOversize:     item.IsOversize,
			UnitCost:       item.CostPerUnit,
		},
		TotalQty:        item.TotalQty,
		UnitPrice:       item.PricePerUnit,
		AddOns:          addOns,
		AddOnTotal:      item.ItemAddonTotal,
		SizingSurcharge: item.ItemSizingSurcharge,
		TotalPrice:      item.TotalPrice,
		TotalCost:       item.TotalCost,
	}
}

// applyTotals writes the aggregator result onto the order header
func applyTotals(order *entity.Order, in *CreateOrderInput, t pricing.Totals) {
	order.IsVATIncluded = in.VATIncluded
	order.ItemsSubtotal = t.ItemsSubtotal
	order.AddOnOptionsTotal = t.AddOnTotal
	order.SizingSurcharge = t.SizingSurcharge
	order.ShippingCost = t.ShippingCost
	order.AddOnCost = t.ManualAddOnCost
	order.DiscountAmount = t.DiscountAmount
	order.DesignFee = in.DesignFee
	order.VATAmount = t.VATAmount
	order.GrandTotal = t.GrandTotal
	order.Deposit1 = t.Deposit1
	order.Deposit2 = t.Deposit2
	order.BalanceAmount = t.BalanceAmount
	order.TotalCost = t.TotalCost
	order.EstimatedProfit = t.EstimatedProfit
}

// CreateOrder resolves the customer, prices every line, aggregates the
// totals, and persists the order with its items in one transaction
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	customer, err := s.customers.Resolve(ctx, &input.Customer)
	if err != nil {
		return nil, err
	}

	lines := make([]*pricing.ComputedLine, 0, len(input.Items))
	for _, item := range input.Items {
		line, err := s.priceLine(ctx, item)
		if err != nil {
			return nil, toAppError(err)
		}
		lines = append(lines, line)
	}

	totals := s.priceBook.Aggregate(pricing.TotalsInput{
		Lines:           lines,
		ShippingCost:    input.ShippingCost,
		ManualAddOnCost: input.AddOnCost,
		DiscountAmount:  input.DiscountAmount,
		DesignFee:       input.DesignFee,
		VATIncluded:     input.VATIncluded,
		Deposit1:        input.Deposit1,
		Deposit2:        input.Deposit2,
	})

	status := input.Status
	if status == "" {
		status = enum.OrderStatusDraft
	}
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order status: " + string(status))
	}

	order := &entity.Order{
		OrderNo:      utils.NewOrderNo(),
		CustomerID:   &customer.ID,
		CreatedByID:  input.CreatedByID,
		Status:       status,
		DeadlineDate: input.DeadlineDate,
		UrgencyLevel: input.UrgencyLevel,
		GraphicCode:  input.GraphicCode,
	}
	applyTotals(order, input, totals)

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, itemFromLine(line))
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}
	order.Customer = customer

	s.audit(ctx, order.ID, input.CreatedByID, "create", "", "", string(order.Status))

	return order, nil
}

// UpdateOrder re-prices an order while protecting committed line pricing.
// Lines are matched to persisted ones by structural fingerprint: a full
// sequence match preserves every line untouched, a per-line match refreshes
// only the quantity matrix, an unmatched incoming line is priced fresh, and
// persisted lines nothing matched are deleted.
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	customer, err := s.customers.Resolve(ctx, &input.Customer)
	if err != nil {
		return nil, err
	}

	incoming := make([]*pricing.ComputedLine, 0, len(input.Items))
	for _, item := range input.Items {
		line, err := s.priceLine(ctx, item)
		if err != nil {
			return nil, toAppError(err)
		}
		incoming = append(incoming, line)
	}

	persisted := make([]string, len(order.Items))
	for i := range order.Items {
		persisted[i] = lineFromItem(&order.Items[i]).Identity().Fingerprint()
	}

	var (
		finalLines []*pricing.ComputedLine
		upserts    []entity.OrderItem
		deleteIDs  []uuid.UUID
	)

	if sameSequence(incoming, persisted) {
		// Resave with identical line content (status change, note edit):
		// keep every committed line exactly as stored.
		for i := range order.Items {
			finalLines = append(finalLines, lineFromItem(&order.Items[i]))
		}
	} else {
		matched := make([]bool, len(order.Items))
		for _, line := range incoming {
			fp := line.Identity().Fingerprint()

			idx := -1
			for i := range order.Items {
				if !matched[i] && persisted[i] == fp {
					idx = i
					break
				}
			}

			if idx >= 0 {
				matched[idx] = true
				item := order.Items[idx]
				item.QuantityMatrix = line.QuantityBySize
				item.TotalQty = line.TotalQty
				upserts = append(upserts, item)
				finalLines = append(finalLines, lineFromItem(&item))
				continue
			}

			item := itemFromLine(line)
			upserts = append(upserts, item)
			finalLines = append(finalLines, line)
		}
		for i := range order.Items {
			if !matched[i] {
				deleteIDs = append(deleteIDs, order.Items[i].ID)
			}
		}
	}

	totals := s.priceBook.Aggregate(pricing.TotalsInput{
		Lines:           finalLines,
		ShippingCost:    input.ShippingCost,
		ManualAddOnCost: input.AddOnCost,
		DiscountAmount:  input.DiscountAmount,
		DesignFee:       input.DesignFee,
		VATIncluded:     input.VATIncluded,
		Deposit1:        input.Deposit1,
		Deposit2:        input.Deposit2,
	})

	oldStatus := order.Status
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Invalid order status: " + string(input.Status))
		}
		order.Status = input.Status
	}
	order.CustomerID = &customer.ID
	order.DeadlineDate = input.DeadlineDate
	if input.UrgencyLevel != "" {
		order.UrgencyLevel = input.UrgencyLevel
	}
	order.GraphicCode = input.GraphicCode
	applyTotals(order, &input.CreateOrderInput, totals)

	order.Customer = nil
	order.Items = nil
	if err := s.orderRepo.UpdateWithItems(ctx, order, upserts, deleteIDs); err != nil {
		return nil, err
	}

	s.audit(ctx, order.ID, input.CreatedByID, "update", "", "", "")
	if order.Status != oldStatus {
		s.audit(ctx, order.ID, input.CreatedByID, "status_change", "status", string(oldStatus), string(order.Status))
	}

	return s.GetOrder(ctx, order.ID)
}

// sameSequence reports whether the incoming lines carry exactly the
// persisted fingerprints in the same order.
func sameSequence(incoming []*pricing.ComputedLine, persisted []string) bool {
	if len(incoming) != len(persisted) {
		return false
	}
	for i, line := range incoming {
		if line.Identity().Fingerprint() != persisted[i] {
			return false
		}
	}
	return true
}

// GetOrder retrieves an order with its customer and items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders filtered by status, customer, and search term
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus moves an order to a new status and records the transition
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, userID *uuid.UUID) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order status: " + string(status))
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	oldStatus := order.Status
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	if status != oldStatus {
		s.audit(ctx, id, userID, "status_change", "status", string(oldStatus), string(status))
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder removes an order and its items
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// ListOrderAuditLogs returns the change history of an order
func (s *OrderService) ListOrderAuditLogs(ctx context.Context, orderID uuid.UUID) ([]entity.AuditLog, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.auditRepo.ListByOrder(ctx, orderID)
}

// audit records a change; audit failures never fail the operation itself
func (s *OrderService) audit(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID, action, field, oldValue, newValue string) {
	_ = s.auditRepo.Create(ctx, &entity.AuditLog{
		OrderID:  orderID,
		UserID:   userID,
		Action:   action,
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	})
}
