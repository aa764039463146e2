package process

import (
	"context"
	"log/slog"
	"time"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, processID string) (Process, error) {
	return s.store.GetProcess(ctx, processID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Process, int, error) {
	return s.store.ListProcesses(ctx, filter)
}

func (s *Service) History(ctx context.Context, processID string) ([]HistoryEntry, error) {
	if _, err := s.store.GetProcess(ctx, processID); err != nil {
		return nil, err
	}
	return s.store.ListHistory(ctx, processID)
}

// Transition moves a process to the requested status. The actor must be an
// administrator or a manager of at least one employee holding goals in this
// process. Leaving definition additionally requires every employee's goal
// weights to sum to exactly 100. The status write is a compare-and-set so two
// racing transitions cannot both succeed; the history append is best-effort.
func (s *Service) Transition(ctx context.Context, processID, requested, actorID string) (TransitionResult, error) {
	current, err := s.store.GetProcess(ctx, processID)
	if err != nil {
		return TransitionResult{}, err
	}

	if err := s.authorizeTransition(ctx, processID, actorID); err != nil {
		return TransitionResult{}, err
	}

	if !ValidStatus(requested) || !CanTransition(current.Status, requested) {
		return TransitionResult{}, ErrInvalidTransition
	}

	if current.Status == StatusInDefinition {
		sums, err := s.store.EmployeeWeightSums(ctx, processID)
		if err != nil {
			return TransitionResult{}, err
		}
		for _, sum := range sums {
			if sum.Total != 100 {
				return TransitionResult{}, ErrWeightsIncomplete
			}
		}
	}

	now := time.Now().UTC()
	updated, err := s.store.CompareAndSetStatus(ctx, processID, current.Status, requested, now)
	if err != nil {
		return TransitionResult{}, err
	}
	if !updated {
		return TransitionResult{}, ErrConflict
	}

	if err := s.store.AppendHistory(ctx, processID, requested, actorID, now); err != nil {
		slog.Warn("status history append failed", "process", processID, "err", err)
	}

	return TransitionResult{
		ID:             processID,
		Status:         requested,
		PreviousStatus: current.Status,
		ChangedAt:      now,
	}, nil
}

func (s *Service) authorizeTransition(ctx context.Context, processID, actorID string) error {
	admin, err := s.store.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}
	manages, err := s.store.ManagesProcessEmployees(ctx, processID, actorID)
	if err != nil {
		return err
	}
	if !manages {
		return ErrForbidden
	}
	return nil
}
