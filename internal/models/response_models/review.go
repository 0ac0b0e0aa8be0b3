package response_models

type Review struct {
	ID         string `json:"id"`
	Place      string `json:"place"`
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  int64  `json:"created_at"`
}
