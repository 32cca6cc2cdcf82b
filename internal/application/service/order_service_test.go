package service

import (
	"context"
	"testing"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	infraRepo "github.com/chatchaiw/apparel-api/internal/infrastructure/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderTestService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.NeckType{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.AuditLog{},
	))

	slopeCost := decimal.NewFromInt(40)
	require.NoError(t, db.Create(&[]entity.NeckType{
		{Name: "คอกลม", IsActive: true},
		{Name: "คอวีตัด", IsActive: true},
		{Name: "คอเชิ้ตฐานตั้ง", IsActive: true},
		{Name: "คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)", ForceSlope: true, AdditionalCost: &slopeCost, IsActive: true},
	}).Error)

	customers := NewCustomerService(infraRepo.NewCustomerRepository(db))
	catalog := NewCatalogService(infraRepo.NewCatalogRepository(db))
	svc := NewOrderService(
		infraRepo.NewOrderRepository(db),
		infraRepo.NewAuditLogRepository(db),
		customers,
		catalog,
		pricing.DefaultPriceBook(),
	)

	return svc, db
}

func roundNeckOrderInput() *CreateOrderInput {
	return &CreateOrderInput{
		Customer: CustomerInput{Name: "ร้านเสื้อบีลุค"},
		Items: []OrderLineInput{
			{
				ProductName:    "เสื้อทีมสีแดง",
				FabricType:     "Micro Smooth",
				NeckType:       "คอกลม",
				SleeveType:     "แขนสั้น",
				QuantityBySize: map[string]int{"M": 10, "L": 10},
				UnitCost:       decimal.NewFromInt(95),
			},
		},
		ShippingCost: decimal.NewFromInt(80),
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	svc, _ := newOrderTestService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, roundNeckOrderInput())
	require.NoError(t, err)

	// 20 round-neck shirts hit the 10-30 band at 240.
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].PricePerUnit.Equal(decimal.NewFromInt(240)))
	assert.True(t, order.Items[0].TotalPrice.Equal(decimal.NewFromInt(4800)))
	assert.Equal(t, 20, order.Items[0].TotalQty)

	// 4800 + 80 shipping, VAT added on top.
	assert.True(t, order.ItemsSubtotal.Equal(decimal.NewFromInt(4800)))
	assert.True(t, order.VATAmount.Equal(decimal.NewFromFloat(341.60)), "got %s", order.VATAmount)
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromFloat(5221.60)), "got %s", order.GrandTotal)

	// First deposit is half the grand total rounded up to a whole baht.
	assert.True(t, order.Deposit1.Equal(decimal.NewFromInt(2611)), "got %s", order.Deposit1)
	assert.True(t, order.Deposit2.Equal(decimal.NewFromFloat(2610.60)), "got %s", order.Deposit2)

	assert.Contains(t, order.OrderNo, "PO-")
	require.NotNil(t, order.CustomerID)
	assert.NotEqual(t, order.ID, order.PublicID)
}

func TestCreateOrderForcedSlopeCategory(t *testing.T) {
	svc, _ := newOrderTestService(t)
	ctx := context.Background()

	input := roundNeckOrderInput()
	input.Items[0].NeckType = "คอปกคางหมู (มีลิ้น) (บังคับไหล่สโลป+40 บาท/ตัว)"
	input.ShippingCost = decimal.Zero

	order, err := svc.CreateOrder(ctx, input)
	require.NoError(t, err)

	// Collared band at 300, slope (40) and tongue (10) forced.
	item := order.Items[0]
	assert.True(t, item.PricePerUnit.Equal(decimal.NewFromInt(300)))
	assert.ElementsMatch(t, []string{"slopeShoulder", "collarTongue"}, item.SelectedAddOns)
	assert.True(t, item.ItemAddonTotal.Equal(decimal.NewFromInt(1000)), "got %s", item.ItemAddonTotal)
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(7000)), "got %s", item.TotalPrice)
}

func TestCreateOrderOversizeDisallowedCategory(t *testing.T) {
	svc, _ := newOrderTestService(t)
	ctx := context.Background()

	input := roundNeckOrderInput()
	input.Items[0].NeckType = "คอเชิ้ตฐานตั้ง"
	input.Items[0].IsOversize = true

	_, err := svc.CreateOrder(ctx, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Oversize")
}

func TestUpdateOrderIdenticalRequestPreservesPricing(t *testing.T) {
	svc, db := newOrderTestService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, roundNeckOrderInput())
	require.NoError(t, err)

	// Tamper the committed price directly; if the update recomputed the
	// line, the off-book value would be overwritten by the band price.
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("id = ?", order.Items[0].ID).
		Updates(map[string]interface{}{
			"price_per_unit": "999",
			"total_price":    "19980",
		}).Error)

	updated, err := svc.UpdateOrder(ctx, &UpdateOrderInput{
		ID:               order.ID,
		CreateOrderInput: *roundNeckOrderInput(),
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, order.Items[0].ID, updated.Items[0].ID)
	assert.True(t, updated.Items[0].PricePerUnit.Equal(decimal.NewFromInt(999)),
		"committed price was recomputed, got %s", updated.Items[0].PricePerUnit)
	assert.True(t, updated.Items[0].TotalPrice.Equal(decimal.NewFromInt(19980)))
}

func TestUpdateOrderChangedQuantityRecomputes(t *testing.T) {
	svc, _ := newOrderTestService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, roundNeckOrderInput())
	require.NoError(t, err)
	originalItemID := order.Items[0].ID

	// 40 shirts moves the line into the 31-50 band at 220.
	input := roundNeckOrderInput()
	input.Items[0].QuantityBySize = map[string]int{"M": 20, "L": 20}

	updated, err := svc.UpdateOrder(ctx, &UpdateOrderInput{
		ID:               order.ID,
		CreateOrderInput: *input,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.NotEqual(t, originalItemID, updated.Items[0].ID)
	assert.Equal(t, 40, updated.Items[0].TotalQty)
	assert.True(t, updated.Items[0].PricePerUnit.Equal(decimal.NewFromInt(220)))
	assert.True(t, updated.Items[0].TotalPrice.Equal(decimal.NewFromInt(8800)))
}

func TestUpdateOrderRemovedLineIsDeleted(t *testing.T) {
	svc, db := newOrderTestService(t)
	ctx := context.Background()

	input := roundNeckOrderInput()
	input.Items = append(input.Items, OrderLineInput{
		ProductName:    "เสื้อสต๊าฟ",
		FabricType:     "Atom",
		NeckType:       "คอวีตัด",
		SleeveType:     "แขนสั้น",
		QuantityBySize: map[string]int{"XL": 12},
		UnitCost:       decimal.NewFromInt(95),
	})

	order, err := svc.CreateOrder(ctx, input)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	updated, err := svc.UpdateOrder(ctx, &UpdateOrderInput{
		ID:               order.ID,
		CreateOrderInput: *roundNeckOrderInput(),
	})
	require.NoError(t, err)

	assert.Len(t, updated.Items, 1)
	assert.Equal(t, "เสื้อทีมสีแดง", updated.Items[0].ProductName)

	var count int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateOrderStatusWritesAuditLog(t *testing.T) {
	svc, db := newOrderTestService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, roundNeckOrderInput())
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(ctx, order.ID, "waiting_booking", nil)
	require.NoError(t, err)
	assert.Equal(t, "waiting_booking", string(updated.Status))

	var logs []entity.AuditLog
	db.Where("order_id = ? AND action = ?", order.ID, "status_change").Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "draft", logs[0].OldValue)
	assert.Equal(t, "waiting_booking", logs[0].NewValue)
}
