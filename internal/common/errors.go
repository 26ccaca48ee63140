// Package common holds sentinel errors shared by the client and server halves.
package common

import "errors"

var (

	// repository / store errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// auth errors
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidToken         = errors.New("invalid token")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrInvalidLoginPassword = errors.New("invalid login/password")

	// transform / validation errors
	ErrValidation = errors.New("validation error")

	// sync errors
	ErrPullNotSupported = errors.New("pull sync not supported yet")
)
