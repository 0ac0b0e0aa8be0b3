package request_models

type SetStorageTokenRequest struct {
	// Empty token switches the media manager back to local-only mode.
	Token string `json:"token"`
}
