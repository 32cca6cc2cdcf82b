package service

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/pricing"
	"github.com/chatchaiw/apparel-api/internal/domain/repository"
)

// CatalogService serves the garment catalog and adapts it to the pricing
// engine's category lookup.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListNeckTypes returns all neck types
func (s *CatalogService) ListNeckTypes(ctx context.Context) ([]entity.NeckType, error) {
	return s.catalogRepo.ListNeckTypes(ctx)
}

// ListFabricTypes returns all fabric types
func (s *CatalogService) ListFabricTypes(ctx context.Context) ([]entity.FabricType, error) {
	return s.catalogRepo.ListFabricTypes(ctx)
}

// ListSleeveTypes returns all sleeve types
func (s *CatalogService) ListSleeveTypes(ctx context.Context) ([]entity.SleeveType, error) {
	return s.catalogRepo.ListSleeveTypes(ctx)
}

// ResolveCategory implements pricing.Lookup over the neck type catalog.
// A miss is (nil, nil); the engine prices off its defaults then.
func (s *CatalogService) ResolveCategory(ctx context.Context, name string) (*pricing.CategoryDef, error) {
	necks, err := s.catalogRepo.ListNeckTypes(ctx)
	if err != nil {
		return nil, err
	}

	defs := make([]pricing.CategoryDef, 0, len(necks))
	for _, n := range necks {
		if !n.IsActive {
			continue
		}
		defs = append(defs, pricing.CategoryDef{
			Name:            n.Name,
			PriceAdjustment: n.PriceAdjustment,
			ForceSlope:      n.ForceSlope,
			AdditionalCost:  n.AdditionalCost,
		})
	}

	return pricing.MatchCategory(defs, name), nil
}
