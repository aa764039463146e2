// Package access decides whether an actor may read or write another user's
// goals and assessments. It deliberately separates "who" failures (Forbidden)
// from "when" failures (InvalidProcessState) so callers can surface distinct
// messages.
package access

import (
	"context"
	"fmt"

	"pms/internal/domain/process"
)

// Directory resolves manager relationships. Satisfied by the auth store.
type Directory interface {
	ManagerID(ctx context.Context, userID string) (string, error)
}

type Check struct {
	IsOwner   bool
	IsManager bool
}

func (c Check) Allowed() bool {
	return c.IsOwner || c.IsManager
}

type Policy struct {
	dir Directory
}

func NewPolicy(dir Directory) *Policy {
	return &Policy{dir: dir}
}

// GoalAccess reports the actor's relationship to the goal's owning employee.
// IsManager holds only for the employee's exact manager, looked up fresh from
// the directory rather than cached on the goal.
func (p *Policy) GoalAccess(ctx context.Context, actorID, employeeID string) (Check, error) {
	check := Check{IsOwner: actorID == employeeID}
	if !check.IsOwner {
		managerID, err := p.dir.ManagerID(ctx, employeeID)
		if err != nil {
			return Check{}, fmt.Errorf("manager lookup: %w", err)
		}
		check.IsManager = managerID != "" && managerID == actorID
	}
	if !check.Allowed() {
		return check, ErrForbidden
	}
	return check, nil
}

// SelfAssessmentWrite permits only the goal's owner, and only while the
// owning process is in self-assessment. The manager is never allowed.
func (p *Policy) SelfAssessmentWrite(actorID, employeeID, processStatus string) error {
	if actorID != employeeID {
		return ErrForbidden
	}
	if processStatus != process.StatusInSelfAssessment {
		return &StateError{Current: processStatus}
	}
	return nil
}

// ManagerAssessmentWrite permits only the employee's exact manager, and only
// while the owning process awaits manager assessment.
func (p *Policy) ManagerAssessmentWrite(ctx context.Context, actorID, employeeID, processStatus string) error {
	managerID, err := p.dir.ManagerID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("manager lookup: %w", err)
	}
	if managerID == "" || managerID != actorID {
		return ErrForbidden
	}
	if processStatus != process.StatusAwaitingManagerAssessment {
		return &StateError{Current: processStatus}
	}
	return nil
}
