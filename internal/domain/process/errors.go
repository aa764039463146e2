package process

import "errors"

var (
	ErrNotFound          = errors.New("assessment process not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrForbidden         = errors.New("actor may not change this process status")
	ErrWeightsIncomplete = errors.New("goal weights must sum to 100 for every employee before leaving definition")
	ErrConflict          = errors.New("process status changed concurrently")
)
