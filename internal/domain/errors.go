package domain

import "errors"

var (
	ErrMalformedReport = errors.New("malformed coverage report")
	ErrMissingConfig   = errors.New("missing required configuration")
	ErrMissingTool     = errors.New("required tool not found")
	ErrReportNotFound  = errors.New("coverage report not found")
)
