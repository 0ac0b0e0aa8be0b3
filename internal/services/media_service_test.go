package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paisalocal/internal/infra"
	"paisalocal/internal/models/db_models"
	"paisalocal/internal/providers/storage"
	mem "paisalocal/pkg/memcache"
	"paisalocal/pkg/utils"
)

type fakeAssetRepo struct {
	assets    []db_models.Asset
	listErr   error
	listCalls int
}

func (f *fakeAssetRepo) Insert(ctx context.Context, asset *db_models.Asset) error {
	f.assets = append(f.assets, *asset)
	return nil
}

func (f *fakeAssetRepo) List(ctx context.Context) ([]db_models.Asset, error) {
	f.listCalls++
	return f.assets, f.listErr
}

func (f *fakeAssetRepo) GetByPath(ctx context.Context, path string) (*db_models.Asset, error) {
	for i := range f.assets {
		if f.assets[i].Path == path {
			return &f.assets[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) DeleteByPath(ctx context.Context, path string) error {
	kept := f.assets[:0]
	for _, a := range f.assets {
		if a.Path != path {
			kept = append(kept, a)
		}
	}
	f.assets = kept
	return nil
}

// listingServer fakes the remote store's listing endpoint and counts hits.
func listingServer(t *testing.T, objects []storage.Object, calls *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		*calls++
		_ = json.NewEncoder(w).Encode(objects)
	}))
}

func newTestMedia(repo *fakeAssetRepo, store *storage.Client, cache *mem.ListingCache[storage.Object]) MediaServiceInterface {
	if cache == nil {
		cache = mem.NewListingCache[storage.Object](30*time.Second, nil)
	}
	return NewMediaService(repo, store, cache, infra.NewMetrics(), zap.NewNop())
}

func TestFindAssetByNameLocalFirst(t *testing.T) {
	repo := &fakeAssetRepo{assets: []db_models.Asset{
		{Path: utils.LocalAssetPrefix + "guatape.jpg", URL: "/media/file/local-guatape.jpg"},
	}}
	svc := newTestMedia(repo, storage.NewClient("", "bucket", ""), nil)

	url, ok := svc.FindAssetByName(context.Background(), "Guatapé")

	require.True(t, ok)
	assert.Equal(t, "/media/file/local-guatape.jpg", url)
}

func TestFindAssetByNameRemoteBidirectional(t *testing.T) {
	var calls int
	srv := listingServer(t, []storage.Object{
		{Name: "jardin-plaza.webp"},
		{Name: "guatape.jpg"},
	}, &calls)
	defer srv.Close()

	store := storage.NewClient(srv.URL, "bucket", "test-token")
	svc := newTestMedia(&fakeAssetRepo{}, store, nil)

	// Asset name contains the place name.
	url, ok := svc.FindAssetByName(context.Background(), "Jardín")
	require.True(t, ok)
	assert.Contains(t, url, "jardin-plaza.webp")

	// And the place name may contain the asset name instead.
	url, ok = svc.FindAssetByName(context.Background(), "Guatapé Antioquia")
	require.True(t, ok)
	assert.Contains(t, url, "guatape.jpg")
}

func TestFindAssetByNameEmptyQuery(t *testing.T) {
	svc := newTestMedia(&fakeAssetRepo{}, storage.NewClient("", "bucket", ""), nil)

	_, ok := svc.FindAssetByName(context.Background(), "¡¿?!")
	assert.False(t, ok)
}

func TestRemoteListingUsesCacheWithinTTL(t *testing.T) {
	var calls int
	srv := listingServer(t, []storage.Object{{Name: "guatape.jpg"}}, &calls)
	defer srv.Close()

	now := time.Unix(5000, 0)
	cache := mem.NewListingCache[storage.Object](30*time.Second, func() time.Time { return now })
	store := storage.NewClient(srv.URL, "bucket", "test-token")
	svc := newTestMedia(&fakeAssetRepo{}, store, cache)

	_, ok := svc.FindAssetByName(context.Background(), "Guatapé")
	require.True(t, ok)
	assert.Equal(t, 1, calls)

	now = now.Add(10 * time.Second)
	_, ok = svc.FindAssetByName(context.Background(), "Guatapé")
	require.True(t, ok)
	assert.Equal(t, 1, calls, "second lookup inside the window must hit the cache")

	now = now.Add(25 * time.Second)
	_, ok = svc.FindAssetByName(context.Background(), "Guatapé")
	require.True(t, ok)
	assert.Equal(t, 2, calls, "stale cache must trigger a refetch")
}

func TestSetTokenInvalidatesListing(t *testing.T) {
	var calls int
	srv := listingServer(t, []storage.Object{{Name: "guatape.jpg"}}, &calls)
	defer srv.Close()

	store := storage.NewClient(srv.URL, "bucket", "test-token")
	svc := newTestMedia(&fakeAssetRepo{}, store, nil)

	_, _ = svc.FindAssetByName(context.Background(), "Guatapé")
	require.Equal(t, 1, calls)

	svc.SetToken("test-token")

	_, _ = svc.FindAssetByName(context.Background(), "Guatapé")
	assert.Equal(t, 2, calls, "token change must drop the cached listing")
}

func TestUploadLocalWhenStoreUnconfigured(t *testing.T) {
	repo := &fakeAssetRepo{}
	svc := newTestMedia(repo, storage.NewClient("", "bucket", ""), nil)

	asset, err := svc.Upload(context.Background(), "tamesis.png", "image/png", []byte{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, utils.LocalAssetPrefix+"tamesis.png", asset.Path)
	assert.Equal(t, "/media/file/"+utils.LocalAssetPrefix+"tamesis.png", asset.URL)

	url, ok := svc.FindAssetByName(context.Background(), "Támesis")
	require.True(t, ok)
	assert.Equal(t, asset.URL, url)
}

func TestDeleteLocalAsset(t *testing.T) {
	repo := &fakeAssetRepo{assets: []db_models.Asset{
		{Path: utils.LocalAssetPrefix + "urrao.jpg", URL: "/media/file/local-urrao.jpg"},
	}}
	svc := newTestMedia(repo, storage.NewClient("", "bucket", ""), nil)

	require.NoError(t, svc.Delete(context.Background(), utils.LocalAssetPrefix+"urrao.jpg"))
	assert.Empty(t, repo.assets)

	err := svc.Delete(context.Background(), utils.LocalAssetPrefix+"urrao.jpg")
	assert.ErrorIs(t, err, utils.ErrAssetNotFound)
}

func TestDeleteRemoteWithoutStore(t *testing.T) {
	svc := newTestMedia(&fakeAssetRepo{}, storage.NewClient("", "bucket", ""), nil)

	err := svc.Delete(context.Background(), "remote-object.jpg")
	assert.ErrorIs(t, err, utils.ErrStorageUnavailable)
}
