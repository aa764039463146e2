package reports

import "errors"

var (
	ErrProcessNotFound = errors.New("assessment process not found")
	ErrForbidden       = errors.New("not allowed to view this report")
)
