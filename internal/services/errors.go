package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// status codes; everything else is a server error.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("caller is not the resource owner")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
