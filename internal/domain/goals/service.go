// Package goals manages the performance goals an employee defines within an
// assessment process, including the 100 percent weight rule that gates the
// process out of definition.
package goals

import (
	"context"
	"fmt"
	"strings"

	"pms/internal/domain/access"
	"pms/internal/domain/process"
)

const (
	minDescriptionLen = 5
	maxDescriptionLen = 500
)

type Service struct {
	store  StoreAPI
	policy *access.Policy
}

func NewService(store StoreAPI, policy *access.Policy) *Service {
	return &Service{store: store, policy: policy}
}

// List returns an employee's goals within a process, with the weight total.
// Visible to the employee and their current manager.
func (s *Service) List(ctx context.Context, actorID, processID, employeeID string) (*GoalList, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, employeeID); err != nil {
		return nil, err
	}
	if _, err := s.store.ProcessStatus(ctx, processID); err != nil {
		return nil, err
	}

	list, err := s.store.ListGoals(ctx, processID, employeeID)
	if err != nil {
		return nil, err
	}
	return &GoalList{
		Goals:          list,
		TotalWeight:    SumWeights(list),
		WeightComplete: IsComplete(list),
	}, nil
}

func (s *Service) Get(ctx context.Context, actorID, goalID string) (*Goal, error) {
	g, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, g.EmployeeID); err != nil {
		return nil, err
	}
	return g, nil
}

// Create adds a goal for an employee. Goals can only change while the owning
// process is still in definition.
func (s *Service) Create(ctx context.Context, actorID, processID, employeeID string, in CreateGoalInput) (*Goal, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, employeeID); err != nil {
		return nil, err
	}
	if err := s.requireDefinition(ctx, processID); err != nil {
		return nil, err
	}
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validate(ctx, in.CategoryID, in.Description, in.Weight); err != nil {
		return nil, err
	}
	return s.store.CreateGoal(ctx, processID, employeeID, in)
}

func (s *Service) Update(ctx context.Context, actorID, goalID string, in UpdateGoalInput) (*Goal, error) {
	g, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, g.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.requireDefinition(ctx, g.ProcessID); err != nil {
		return nil, err
	}
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validate(ctx, in.CategoryID, in.Description, in.Weight); err != nil {
		return nil, err
	}
	return s.store.UpdateGoal(ctx, goalID, in)
}

func (s *Service) Delete(ctx context.Context, actorID, goalID string) error {
	g, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return err
	}
	if _, err := s.policy.GoalAccess(ctx, actorID, g.EmployeeID); err != nil {
		return err
	}
	if err := s.requireDefinition(ctx, g.ProcessID); err != nil {
		return err
	}
	return s.store.DeleteGoal(ctx, goalID)
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) Predefined(ctx context.Context, filter PredefinedFilter) ([]PredefinedGoal, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.store.ListPredefined(ctx, filter)
}

func (s *Service) requireDefinition(ctx context.Context, processID string) error {
	status, err := s.store.ProcessStatus(ctx, processID)
	if err != nil {
		return err
	}
	if status != process.StatusInDefinition {
		return &access.StateError{Current: status}
	}
	return nil
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := s.store.EmployeeExists(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("employee lookup: %w", err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Service) validate(ctx context.Context, categoryID, description string, weight int) error {
	if weight < 0 || weight > 100 {
		return ErrInvalidWeight
	}
	if n := len(description); n < minDescriptionLen || n > maxDescriptionLen {
		return ErrInvalidDescription
	}
	ok, err := s.store.CategoryExists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup: %w", err)
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}
