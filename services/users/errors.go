package users

import "errors"

// Domain errors of the users service. Conflicts are distinct so handlers can
// attach the matching machine-readable flag.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
