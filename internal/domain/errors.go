package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrUnknownFormat = errors.New("unknown invoice format")
	ErrPDFGeneration = errors.New("pdf generation failed")
)
