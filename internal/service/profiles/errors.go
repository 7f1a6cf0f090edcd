package profiles

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidName     = errors.New("profile name may only contain letters, digits and underscores")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidAvatar   = errors.New("avatar must be a valid URL")
)
