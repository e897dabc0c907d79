package profile

import "errors"

var (
	ErrNothingToUpdate = errors.New("no profile fields to update")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)
