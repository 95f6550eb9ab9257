package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrMissingUsername   = goerr.New("username is required")
	ErrInvalidRole       = goerr.New("invalid role")
	ErrDuplicateUsername = goerr.New("duplicate username")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
)
