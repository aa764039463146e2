package access

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden           = errors.New("actor has no access to this resource")
	ErrInvalidProcessState = errors.New("operation not allowed in current process status")
)

// StateError reports a "wrong stage" failure and carries the current status
// for diagnostics. errors.Is(err, ErrInvalidProcessState) matches it.
type StateError struct {
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("operation not allowed while process status is %q", e.Current)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidProcessState
}
