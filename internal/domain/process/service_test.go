package process

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	process     Process
	processErr  error
	admins      map[string]bool
	managers    map[string]bool
	weightSums  []EmployeeWeightSum
	history     []HistoryEntry
	historyErr  error
	casRejects  bool
	savedStatus string
}

func (f *fakeStore) GetProcess(ctx context.Context, processID string) (Process, error) {
	if f.processErr != nil {
		return Process{}, f.processErr
	}
	return f.process, nil
}

func (f *fakeStore) ListProcesses(ctx context.Context, filter ListFilter) ([]Process, int, error) {
	return []Process{f.process}, 1, nil
}

func (f *fakeStore) CompareAndSetStatus(ctx context.Context, processID, currentStatus, newStatus string, at time.Time) (bool, error) {
	if f.casRejects {
		return false, nil
	}
	f.savedStatus = newStatus
	return true, nil
}

func (f *fakeStore) AppendHistory(ctx context.Context, processID, status, actorID string, at time.Time) error {
	if f.historyErr != nil {
		return f.historyErr
	}
	f.history = append(f.history, HistoryEntry{Status: status, ChangedAt: at, ChangedByID: actorID})
	return nil
}

func (f *fakeStore) ListHistory(ctx context.Context, processID string) ([]HistoryEntry, error) {
	return f.history, nil
}

func (f *fakeStore) EmployeeWeightSums(ctx context.Context, processID string) ([]EmployeeWeightSum, error) {
	return f.weightSums, nil
}

func (f *fakeStore) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
}

func (f *fakeStore) ManagesProcessEmployees(ctx context.Context, processID, userID string) (bool, error) {
	return f.managers[userID], nil
}

func newFakeStore(status string) *fakeStore {
	return &fakeStore{
		process:  Process{ID: "p1", Title: "Annual Review", Status: status},
		admins:   map[string]bool{"admin": true},
		managers: map[string]bool{"manager": true},
	}
}

func TestTransitionHappyPath(t *testing.T) {
	store := newFakeStore(StatusInSelfAssessment)
	svc := NewService(store)

	result, err := svc.Transition(context.Background(), "p1", StatusAwaitingManagerAssessment, "manager")
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if result.Status != StatusAwaitingManagerAssessment || result.PreviousStatus != StatusInSelfAssessment {
		t.Fatalf("unexpected result: %+v", result)
	}
	if store.savedStatus != StatusAwaitingManagerAssessment {
		t.Fatalf("status not persisted, got %q", store.savedStatus)
	}
	if len(store.history) != 1 || store.history[0].ChangedByID != "manager" {
		t.Fatalf("expected one history entry by manager, got %+v", store.history)
	}
}

func TestTransitionRejectsIllegalJump(t *testing.T) {
	svc := NewService(newFakeStore(StatusInDefinition))

	_, err := svc.Transition(context.Background(), "p1", StatusCompleted, "admin")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeStore(StatusInDefinition))

	_, err := svc.Transition(context.Background(), "p1", "archived", "admin")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransitionForbiddenForUnrelatedActor(t *testing.T) {
	svc := NewService(newFakeStore(StatusInSelfAssessment))

	_, err := svc.Transition(context.Background(), "p1", StatusAwaitingManagerAssessment, "stranger")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Even for an illegal jump the unrelated actor must not learn whether
	// the transition would have been valid.
	_, err = svc.Transition(context.Background(), "p1", StatusCompleted, "stranger")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for invalid target, got %v", err)
	}
}

func TestTransitionNotFound(t *testing.T) {
	store := newFakeStore(StatusInDefinition)
	store.processErr = ErrNotFound
	svc := NewService(store)

	_, err := svc.Transition(context.Background(), "missing", StatusAwaitingSelfAssessment, "admin")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransitionEnforcesWeightGate(t *testing.T) {
	store := newFakeStore(StatusInDefinition)
	store.weightSums = []EmployeeWeightSum{{EmployeeID: "e1", Total: 100}, {EmployeeID: "e2", Total: 99}}
	svc := NewService(store)

	_, err := svc.Transition(context.Background(), "p1", StatusAwaitingSelfAssessment, "admin")
	if !errors.Is(err, ErrWeightsIncomplete) {
		t.Fatalf("expected ErrWeightsIncomplete, got %v", err)
	}

	store.weightSums = []EmployeeWeightSum{{EmployeeID: "e1", Total: 110}}
	if _, err := svc.Transition(context.Background(), "p1", StatusAwaitingSelfAssessment, "admin"); !errors.Is(err, ErrWeightsIncomplete) {
		t.Fatalf("expected ErrWeightsIncomplete for overweight employee, got %v", err)
	}

	store.weightSums = []EmployeeWeightSum{{EmployeeID: "e1", Total: 100}}
	if _, err := svc.Transition(context.Background(), "p1", StatusAwaitingSelfAssessment, "admin"); err != nil {
		t.Fatalf("expected complete weights to pass, got %v", err)
	}
}

func TestTransitionWeightGateOnlyLeavingDefinition(t *testing.T) {
	store := newFakeStore(StatusInSelfAssessment)
	store.weightSums = []EmployeeWeightSum{{EmployeeID: "e1", Total: 55}}
	svc := NewService(store)

	if _, err := svc.Transition(context.Background(), "p1", StatusAwaitingManagerAssessment, "admin"); err != nil {
		t.Fatalf("weight gate must not apply past definition: %v", err)
	}
}

func TestTransitionConflictOnConcurrentChange(t *testing.T) {
	store := newFakeStore(StatusInSelfAssessment)
	store.casRejects = true
	svc := NewService(store)

	_, err := svc.Transition(context.Background(), "p1", StatusAwaitingManagerAssessment, "admin")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTransitionSwallowsHistoryFailure(t *testing.T) {
	store := newFakeStore(StatusAwaitingManagerAssessment)
	store.historyErr = errors.New("history table unavailable")
	svc := NewService(store)

	result, err := svc.Transition(context.Background(), "p1", StatusCompleted, "admin")
	if err != nil {
		t.Fatalf("history failure must not fail the transition: %v", err)
	}
	if result.Status != StatusCompleted {
		t.Fatalf("unexpected result: %+v", result)
	}
}
