package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrRiskNotFound     = goerr.New("risk not found")
	ErrKPINotFound      = goerr.New("KPI not found")
	ErrDocumentNotFound = goerr.New("document not found")
	ErrForbidden        = goerr.New("permission denied")
	ErrValidation       = goerr.New("validation failed")
)
