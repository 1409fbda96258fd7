package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidColorTag    = goerr.New("invalid color tag")
	ErrInvalidSeverityTag = goerr.New("invalid severity tag")
	ErrUnsupportedFormat  = goerr.New("unsupported render format")
)
