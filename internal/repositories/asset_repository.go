package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paisalocal/internal/models/db_models"
)

type AssetRepository interface {
	Insert(ctx context.Context, asset *db_models.Asset) error
	List(ctx context.Context) ([]db_models.Asset, error)
	GetByPath(ctx context.Context, path string) (*db_models.Asset, error)
	DeleteByPath(ctx context.Context, path string) error
}

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Insert(ctx context.Context, asset *db_models.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *assetRepository) List(ctx context.Context) ([]db_models.Asset, error) {
	var assets []db_models.Asset
	// Listing never needs the blob bytes.
	err := r.db.WithContext(ctx).
		Select("id", "created_at", "updated_at", "path", "url", "content_type").
		Order("created_at desc").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepository) GetByPath(ctx context.Context, path string) (*db_models.Asset, error) {
	var asset db_models.Asset
	err := r.db.WithContext(ctx).First(&asset, "path = ?", path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) DeleteByPath(ctx context.Context, path string) error {
	return r.db.WithContext(ctx).Where("path = ?", path).Delete(&db_models.Asset{}).Error
}
