package repository

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
)

// CatalogRepository exposes the read contract over the garment catalog.
// Catalog authoring happens elsewhere; the engine only reads.
type CatalogRepository interface {
	ListNeckTypes(ctx context.Context) ([]entity.NeckType, error)
	ListFabricTypes(ctx context.Context) ([]entity.FabricType, error)
	ListSleeveTypes(ctx context.Context) ([]entity.SleeveType, error)
}
