package domain

import "errors"

var (
	// Externally supplied bin data could not be decoded or failed validation.
	ErrInvalidBinData = errors.New("invalid bin data")
	ErrBinNotFound    = errors.New("bin not found")
	ErrInvalidMode    = errors.New("invalid route mode")
	ErrInvalidStatus  = errors.New("invalid report status")
)
