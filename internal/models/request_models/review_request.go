package request_models

type CreateReviewRequest struct {
	Place   string `json:"place" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
