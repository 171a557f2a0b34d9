package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidState       = errors.New("invalid state transition")
	ErrDuplicate          = errors.New("duplicate record")
	ErrFileValidation     = errors.New("File Validation Failed.")
	ErrOpenReturn         = errors.New("a return for this wage month is already in process")
	ErrContextExpired     = errors.New("payment context expired, please regenerate the challan details")
	ErrBankNotSupported   = errors.New("selected bank is not available for internet banking")
)
