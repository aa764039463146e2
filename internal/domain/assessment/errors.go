package assessment

import "errors"

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInvalidRating   = errors.New("rating must be between 0 and 150")
	ErrInvalidComments = errors.New("comments must be at most 500 characters")
	ErrUnknownKind     = errors.New("unknown assessment kind")
)
