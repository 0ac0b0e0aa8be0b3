package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"paisalocal/internal/models/db_models"
	"paisalocal/internal/models/request_models"
	"paisalocal/internal/models/response_models"
	"paisalocal/internal/repositories"
	"paisalocal/pkg/utils"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateReviewRequest, authorID uuid.UUID, authorName string) error
	ListByPlace(ctx context.Context, placeTitle string) ([]response_models.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	placeRepo  repositories.PlaceRepository
	logger     *zap.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		logger:     logger,
	}
}

func (r *ReviewService) Create(ctx context.Context, req request_models.CreateReviewRequest, authorID uuid.UUID, authorName string) error {
	if req.Rating < 1 || req.Rating > 5 {
		return utils.ErrInvalidRating
	}

	place, err := r.placeRepo.GetByTitle(ctx, req.Place)
	if err != nil {
		r.logger.Error("review place lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}

	review := &db_models.Review{
		PlaceID:    place.ID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := r.reviewRepo.Insert(ctx, review); err != nil {
		r.logger.Error("review insert failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *ReviewService) ListByPlace(ctx context.Context, placeTitle string) ([]response_models.Review, error) {
	place, err := r.placeRepo.GetByTitle(ctx, placeTitle)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	reviews, err := r.reviewRepo.ListByPlace(ctx, place.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Review, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, response_models.Review{
			ID:         rv.ID.String(),
			Place:      place.Title,
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			CreatedAt:  rv.CreatedAt,
		})
	}
	return out, nil
}
