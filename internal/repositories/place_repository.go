package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paisalocal/internal/models/db_models"
)

type PlaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
	GetByTitle(ctx context.Context, title string) (*db_models.Place, error)
	// Filter matches the query as a substring across title, region and
	// description. Empty query lists everything.
	Filter(ctx context.Context, query string, page, pageSize int) ([]db_models.Place, error)
	// UpsertAll seeds the catalog; existing rows are updated by title.
	UpsertAll(ctx context.Context, places []db_models.Place) error
	Insert(ctx context.Context, place *db_models.Place) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) GetByTitle(ctx context.Context, title string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "LOWER(title) = LOWER(?)", title).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) Filter(ctx context.Context, query string, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place

	tx := r.db.WithContext(ctx)
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"title ILIKE ? OR region ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	offset := (page - 1) * pageSize
	err := tx.Order("title asc").Offset(offset).Limit(pageSize).Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) UpsertAll(ctx context.Context, places []db_models.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			UpdateAll: true,
		}).
		Create(&places).Error
}

func (r *placeRepository) Insert(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}
