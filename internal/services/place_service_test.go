package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"paisalocal/internal/models/db_models"
	"paisalocal/pkg/utils"
)

type fakePlaceRepo struct {
	byID     map[uuid.UUID]*db_models.Place
	upserted []db_models.Place
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	return f.byID[id], nil
}

func (f *fakePlaceRepo) GetByTitle(ctx context.Context, title string) (*db_models.Place, error) {
	for _, p := range f.byID {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) Filter(ctx context.Context, query string, page, pageSize int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlaceRepo) UpsertAll(ctx context.Context, places []db_models.Place) error {
	f.upserted = places
	return nil
}

func (f *fakePlaceRepo) Insert(ctx context.Context, place *db_models.Place) error { return nil }

func TestPlaceGetByIDNotFound(t *testing.T) {
	svc := NewPlaceService(&fakePlaceRepo{byID: map[uuid.UUID]*db_models.Place{}}, zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestPlaceFilterRejectsBadPagination(t *testing.T) {
	svc := NewPlaceService(&fakePlaceRepo{}, zap.NewNop())

	_, err := svc.Filter(context.Background(), "", 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.Filter(context.Background(), "", 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.Filter(context.Background(), "", 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestSeedFromGazetteer(t *testing.T) {
	repo := &fakePlaceRepo{}
	svc := NewPlaceService(repo, zap.NewNop())

	n, err := svc.SeedFromGazetteer(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(repo.upserted), n)
	assert.NotEmpty(t, repo.upserted)
	for _, p := range repo.upserted {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Region)
		assert.NotEmpty(t, p.Terminal)
	}
}
