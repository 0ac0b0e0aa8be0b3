package response_models

// Asset origins.
const (
	AssetOriginLocal  = "local"
	AssetOriginRemote = "remote"
)

type Asset struct {
	URL    string `json:"url"`
	Path   string `json:"path"`
	Origin string `json:"origin"`
}
