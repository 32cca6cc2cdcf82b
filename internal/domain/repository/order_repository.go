package repository

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/chatchaiw/apparel-api/pkg/pagination"
	"github.com/google/uuid"
)

// OrderFilterParams filters the order listing
type OrderFilterParams struct {
	Pagination pagination.PaginationParams
	Status     enum.OrderStatus
	CustomerID *uuid.UUID
	Search     string
}

// OrderRepository defines the interface for order data operations.
// CreateWithItems and UpdateWithItems are transactional: the header and
// the whole line collection commit or roll back together.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	UpdateWithItems(ctx context.Context, order *entity.Order, upserts []entity.OrderItem, deleteItemIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
