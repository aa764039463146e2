package goals

import "errors"

var (
	ErrNotFound           = errors.New("goal not found")
	ErrProcessNotFound    = errors.New("assessment process not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrCategoryNotFound   = errors.New("goal category not found")
	ErrInvalidWeight      = errors.New("goal weight must be between 0 and 100")
	ErrInvalidDescription = errors.New("goal description must be between 5 and 500 characters")
)
