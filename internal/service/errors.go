package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrSessionExpired = errors.New("session is expired")

	ErrUnauthenticated = errors.New("no authenticated user in context")
	ErrForbidden       = errors.New("authenticated user does not own the resource")
)
