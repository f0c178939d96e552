package services

import "errors"

var (
	ErrLinkNotFound       = errors.New("link not found or already deleted")
	ErrLinkExpired        = errors.New("link expired")
	ErrCodeTaken          = errors.New("short code already used")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
