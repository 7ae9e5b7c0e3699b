package models

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrOfferNotFound      = errors.New("models: offer not found")
	ErrSessionNotFound    = errors.New("models: session not found")
)
