package repository

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetByName matches the exact stored name; callers trim first.
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	// FindOrCreateByName returns the existing customer for the name or
	// atomically creates a bare record, so two concurrent submissions for
	// the same name cannot both insert.
	FindOrCreateByName(ctx context.Context, name string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
