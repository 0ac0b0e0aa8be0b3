package utils

import "errors"

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrNothingFound       = errors.New("nothing found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrDatabaseError      = errors.New("database error")
	ErrStorageUnavailable = errors.New("storage not configured")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
