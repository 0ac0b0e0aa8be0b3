package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"paisalocal/internal/infra"
	"paisalocal/internal/models/db_models"
	"paisalocal/internal/models/response_models"
	"paisalocal/internal/providers/storage"
	"paisalocal/internal/repositories"
	mem "paisalocal/pkg/memcache"
	"paisalocal/pkg/utils"
)

type MediaServiceInterface interface {
	// FindAssetByName fuzzy-matches a place name against stored asset names,
	// local inventory first, then the remote store listing.
	FindAssetByName(ctx context.Context, name string) (string, bool)
	Upload(ctx context.Context, name, contentType string, data []byte) (response_models.Asset, error)
	List(ctx context.Context) ([]response_models.Asset, error)
	Delete(ctx context.Context, path string) error
	GetLocalFile(ctx context.Context, path string) (*db_models.Asset, error)
	// SetToken swaps the remote store token at runtime and invalidates the
	// listing cache.
	SetToken(token string)
}

type MediaService struct {
	assets  repositories.AssetRepository
	store   *storage.Client
	listing *mem.ListingCache[storage.Object]
	metrics *infra.Metrics
	logger  *zap.Logger
}

func NewMediaService(
	assets repositories.AssetRepository,
	store *storage.Client,
	listing *mem.ListingCache[storage.Object],
	metrics *infra.Metrics,
	logger *zap.Logger,
) MediaServiceInterface {
	return &MediaService{
		assets:  assets,
		store:   store,
		listing: listing,
		metrics: metrics,
		logger:  logger,
	}
}

func (m *MediaService) FindAssetByName(ctx context.Context, name string) (string, bool) {
	target := utils.Normalize(name)
	if target == "" {
		return "", false
	}

	if url, ok := m.findLocal(ctx, target); ok {
		return url, true
	}
	return m.findRemote(ctx, target)
}

func (m *MediaService) findLocal(ctx context.Context, target string) (string, bool) {
	assets, err := m.assets.List(ctx)
	if err != nil {
		m.logger.Warn("local asset listing failed", zap.Error(err))
		return "", false
	}
	for _, a := range assets {
		if strings.Contains(utils.Normalize(a.Path), target) {
			return a.URL, true
		}
	}
	return "", false
}

func (m *MediaService) findRemote(ctx context.Context, target string) (string, bool) {
	objects, ok := m.remoteListing(ctx)
	if !ok {
		return "", false
	}

	for _, obj := range objects {
		normalized := utils.Normalize(obj.Name)
		if normalized == "" {
			continue
		}
		// Bidirectional containment tolerates partial names on either side.
		if strings.Contains(normalized, target) || strings.Contains(target, normalized) {
			return obj.URL, true
		}
	}
	return "", false
}

// remoteListing returns the remote store contents, served from the freshness
// cache when possible. Without a token the remote store is skipped silently.
func (m *MediaService) remoteListing(ctx context.Context) ([]storage.Object, bool) {
	if !m.store.Configured() {
		return nil, false
	}

	if cached, ok := m.listing.Get(); ok {
		m.metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
		return cached, true
	}
	m.metrics.ListingCacheTotal.WithLabelValues("miss").Inc()

	objects, err := m.store.List(ctx)
	if err != nil {
		m.logger.Warn("remote listing failed", zap.Error(err))
		return nil, false
	}
	m.listing.Set(objects)
	return objects, true
}

func (m *MediaService) Upload(ctx context.Context, name, contentType string, data []byte) (response_models.Asset, error) {
	if m.store.Configured() {
		obj, err := m.store.Upload(ctx, name, contentType, data)
		if err != nil {
			m.logger.Warn("remote upload failed", zap.Error(err))
			return response_models.Asset{}, utils.ErrStorageUnavailable
		}
		m.listing.Invalidate()
		return response_models.Asset{
			URL:    obj.URL,
			Path:   obj.Name,
			Origin: response_models.AssetOriginRemote,
		}, nil
	}

	path := utils.LocalAssetPrefix + name
	asset := &db_models.Asset{
		Path:        path,
		URL:         "/media/file/" + path,
		ContentType: contentType,
		Data:        data,
	}
	if err := m.assets.Insert(ctx, asset); err != nil {
		return response_models.Asset{}, utils.ErrDatabaseError
	}
	return response_models.Asset{
		URL:    asset.URL,
		Path:   asset.Path,
		Origin: response_models.AssetOriginLocal,
	}, nil
}

func (m *MediaService) List(ctx context.Context) ([]response_models.Asset, error) {
	local, err := m.assets.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Asset, 0, len(local))
	for _, a := range local {
		out = append(out, response_models.Asset{
			URL:    a.URL,
			Path:   a.Path,
			Origin: response_models.AssetOriginLocal,
		})
	}

	if objects, ok := m.remoteListing(ctx); ok {
		for _, obj := range objects {
			out = append(out, response_models.Asset{
				URL:    obj.URL,
				Path:   obj.Name,
				Origin: response_models.AssetOriginRemote,
			})
		}
	}
	return out, nil
}

func (m *MediaService) Delete(ctx context.Context, path string) error {
	if strings.HasPrefix(path, utils.LocalAssetPrefix) {
		existing, err := m.assets.GetByPath(ctx, path)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if existing == nil {
			return utils.ErrAssetNotFound
		}
		if err := m.assets.DeleteByPath(ctx, path); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	if !m.store.Configured() {
		return utils.ErrStorageUnavailable
	}
	if err := m.store.Remove(ctx, path); err != nil {
		m.logger.Warn("remote delete failed", zap.Error(err))
		return utils.ErrAssetNotFound
	}
	m.listing.Invalidate()
	return nil
}

func (m *MediaService) GetLocalFile(ctx context.Context, path string) (*db_models.Asset, error) {
	asset, err := m.assets.GetByPath(ctx, path)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if asset == nil {
		return nil, utils.ErrAssetNotFound
	}
	return asset, nil
}

func (m *MediaService) SetToken(token string) {
	m.store.SetToken(token)
	m.listing.Invalidate()
}
