package config

import (
	"errors"
	"time"
)

const defaultTokenDuration = 24 * time.Hour

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration does
	// not contain a usable database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAuthConfigs is returned when the merged configuration does
	// not contain a token signing key.
	ErrInvalidAuthConfigs = errors.New("invalid auth configs: token sign key is required")
)
