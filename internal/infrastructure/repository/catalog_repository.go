package repository

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	domainRepo "github.com/chatchaiw/apparel-api/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domainRepo.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListNeckTypes(ctx context.Context) ([]entity.NeckType, error) {
	var necks []entity.NeckType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&necks).Error
	return necks, err
}

func (r *catalogRepository) ListFabricTypes(ctx context.Context) ([]entity.FabricType, error) {
	var fabrics []entity.FabricType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&fabrics).Error
	return fabrics, err
}

func (r *catalogRepository) ListSleeveTypes(ctx context.Context) ([]entity.SleeveType, error) {
	var sleeves []entity.SleeveType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sleeves).Error
	return sleeves, err
}
