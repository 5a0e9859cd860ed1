package domain

import "errors"

// Login-time errors. Unknown email and wrong password collapse into
// ErrInvalidCredentials so responses cannot be used to enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

// Token-time errors. These stay internal: the API surface collapses all of
// them into a 401 and only the logs record which one occurred.
var (
	ErrTokenMalformed  = errors.New("malformed token")
	ErrTokenSignature  = errors.New("invalid token signature")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenRevoked    = errors.New("token revoked")
	ErrUnauthenticated = errors.New("unauthenticated")
)

var (
	ErrForbidden        = errors.New("access forbidden")
	ErrUserNotFound     = errors.New("user not found")
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
