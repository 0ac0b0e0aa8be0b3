package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paisalocal/internal/models/request_models"
	"paisalocal/internal/services"
	"paisalocal/pkg/utils"
)

type SearchController struct {
	searchService  services.SearchServiceInterface
	suggestService services.SuggestServiceInterface
}

func NewSearchController(
	searchService services.SearchServiceInterface,
	suggestService services.SuggestServiceInterface,
) *SearchController {
	return &SearchController{
		searchService:  searchService,
		suggestService: suggestService,
	}
}

// Search handles GET /search?q=&lang=. External failures degrade to local
// results inside the service; the only user-visible error is an empty set.
func (sc *SearchController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing query parameter q")
		return
	}
	if req.Language == "" {
		req.Language = "es"
	}

	results := sc.searchService.Search(c.Request.Context(), req.Query, req.Language)
	if len(results) == 0 {
		utils.HandleServiceError(c, utils.ErrNothingFound)
		return
	}

	utils.RespondSuccess(c, results, "Search completed")
}

// Latest handles GET /search/latest.
func (sc *SearchController) Latest(c *gin.Context) {
	utils.RespondSuccess(c, sc.searchService.Latest(), "Latest search results")
}

// Suggest handles GET /suggest?q=. Short partials yield an empty list, not
// an error, so clients can bind it directly to a text box.
func (sc *SearchController) Suggest(c *gin.Context) {
	var req request_models.SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondSuccess(c, []string{}, "Suggestions")
		return
	}
	utils.RespondSuccess(c, sc.suggestService.Suggest(req.Query), "Suggestions")
}
