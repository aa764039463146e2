// Package assessment handles the self and manager ratings submitted against
// goals once a process reaches the corresponding lifecycle stage.
package assessment

import (
	"context"
	"strings"

	"pms/internal/domain/access"
)

const (
	minRating      = 0
	maxRating      = 150
	maxCommentsLen = 500
)

type Service struct {
	store  StoreAPI
	policy *access.Policy
}

func NewService(store StoreAPI, policy *access.Policy) *Service {
	return &Service{store: store, policy: policy}
}

// Submit records or replaces the actor's assessment of a goal. The self
// track is open to the goal's owner during in_self_assessment, the manager
// track to the employee's current manager during awaiting_manager_assessment.
func (s *Service) Submit(ctx context.Context, actorID, goalID string, kind Kind, in SubmitInput) (*Record, error) {
	if !ValidKind(kind) {
		return nil, ErrUnknownKind
	}
	gc, err := s.store.GoalContext(ctx, goalID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindSelf:
		err = s.policy.SelfAssessmentWrite(actorID, gc.EmployeeID, gc.ProcessStatus)
	case KindManager:
		err = s.policy.ManagerAssessmentWrite(ctx, actorID, gc.EmployeeID, gc.ProcessStatus)
	}
	if err != nil {
		return nil, err
	}

	if in.Rating < minRating || in.Rating > maxRating {
		return nil, ErrInvalidRating
	}
	in.Comments = strings.TrimSpace(in.Comments)
	if len(in.Comments) > maxCommentsLen {
		return nil, ErrInvalidComments
	}

	return s.store.Upsert(ctx, kind, goalID, in)
}

// Get returns both assessment tracks for a goal, visible to the goal's
// owner and their manager.
func (s *Service) Get(ctx context.Context, actorID, goalID string) (*Pair, error) {
	gc, err := s.store.GoalContext(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, gc.EmployeeID); err != nil {
		return nil, err
	}
	return s.store.GetPair(ctx, goalID)
}
