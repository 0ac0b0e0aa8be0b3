package request_models

type SearchRequest struct {
	Query    string `form:"q" binding:"required"`
	Language string `form:"lang"`
}

type SuggestRequest struct {
	Query string `form:"q" binding:"required"`
}
