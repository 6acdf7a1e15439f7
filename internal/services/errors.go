package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrDuplicatePincode   = errors.New("pin code already exists")
	ErrInvalidReason      = errors.New("invalid not-delivered reason")
)
