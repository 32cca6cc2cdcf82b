package service

import (
	"context"
	"testing"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	infraRepo "github.com/chatchaiw/apparel-api/internal/infrastructure/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCustomerTestService(t *testing.T) (*CustomerService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Customer{}))

	return NewCustomerService(infraRepo.NewCustomerRepository(db)), db
}

func TestResolveDeduplicatesByTrimmedName(t *testing.T) {
	svc, db := newCustomerTestService(t)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, &CustomerInput{Name: "Somchai"})
	require.NoError(t, err)

	second, err := svc.Resolve(ctx, &CustomerInput{Name: "  Somchai  "})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&entity.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResolveBlankNameUsesPlaceholder(t *testing.T) {
	svc, _ := newCustomerTestService(t)
	ctx := context.Background()

	customer, err := svc.Resolve(ctx, &CustomerInput{Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, "ลูกค้าไม่ระบุชื่อ", customer.Name)

	again, err := svc.Resolve(ctx, &CustomerInput{Name: ""})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, again.ID)
}

func TestResolveMergesContactFields(t *testing.T) {
	svc, _ := newCustomerTestService(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, &CustomerInput{
		Name:  "Somsri",
		Phone: "081-111-1111",
	})
	require.NoError(t, err)

	// New submission carries a changed phone and a fresh address but no
	// channel; only the non-empty fields win.
	updated, err := svc.Resolve(ctx, &CustomerInput{
		Name:    "Somsri",
		Phone:   "081-222-2222",
		Address: "99 หมู่ 4 ต.บางรัก",
	})
	require.NoError(t, err)

	assert.Equal(t, "081-222-2222", updated.Phone)
	assert.Equal(t, "99 หมู่ 4 ต.บางรัก", updated.Address)

	// A later submission with empty contact fields must not blank them.
	final, err := svc.Resolve(ctx, &CustomerInput{Name: "Somsri"})
	require.NoError(t, err)
	assert.Equal(t, "081-222-2222", final.Phone)
	assert.Equal(t, "99 หมู่ 4 ต.บางรัก", final.Address)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc, _ := newCustomerTestService(t)

	_, err := svc.GetCustomer(context.Background(), uuid.New())
	assert.Error(t, err)
}
