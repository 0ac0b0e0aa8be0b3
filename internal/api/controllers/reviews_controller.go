package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paisalocal/internal/models/request_models"
	"paisalocal/internal/services"
	"paisalocal/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{reviewService: reviewService}
}

// Create handles POST /reviews. Requires the JWT middleware.
func (rc *ReviewsController) Create(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	if err := rc.reviewService.Create(c.Request.Context(), req, authorID, c.GetString("user_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review created")
}

// ListByPlace handles GET /reviews?place=.
func (rc *ReviewsController) ListByPlace(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing query parameter place")
		return
	}

	reviews, err := rc.reviewService.ListByPlace(c.Request.Context(), place)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Fetched reviews successfully")
}
