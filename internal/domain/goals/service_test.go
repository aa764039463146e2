package goals

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"pms/internal/domain/access"
	"pms/internal/domain/auth"
	"pms/internal/domain/process"
)

type fakeStore struct {
	goals      map[string]*Goal
	statuses   map[string]string
	employees  map[string]bool
	categories map[string]string
	nextID     int
	deleted    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		goals:      map[string]*Goal{},
		statuses:   map[string]string{"proc-1": process.StatusInDefinition},
		employees:  map[string]bool{"employee": true},
		categories: map[string]string{"cat-1": "Efficiency"},
	}
}

func (f *fakeStore) ListGoals(ctx context.Context, processID, employeeID string) (Goals, error) {
	list := Goals{}
	for _, g := range f.goals {
		if g.ProcessID == processID && g.EmployeeID == employeeID {
			list = append(list, *g)
		}
	}
	return list, nil
}

func (f *fakeStore) GetGoal(ctx context.Context, goalID string) (*Goal, error) {
	g, ok := f.goals[goalID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeStore) CreateGoal(ctx context.Context, processID, employeeID string, in CreateGoalInput) (*Goal, error) {
	f.nextID++
	g := &Goal{
		ID:           "goal-" + strconv.Itoa(f.nextID),
		ProcessID:    processID,
		EmployeeID:   employeeID,
		CategoryID:   in.CategoryID,
		CategoryName: f.categories[in.CategoryID],
		Description:  in.Description,
		Weight:       in.Weight,
	}
	f.goals[g.ID] = g
	copied := *g
	return &copied, nil
}

func (f *fakeStore) UpdateGoal(ctx context.Context, goalID string, in UpdateGoalInput) (*Goal, error) {
	g, ok := f.goals[goalID]
	if !ok {
		return nil, ErrNotFound
	}
	g.CategoryID = in.CategoryID
	g.Description = in.Description
	g.Weight = in.Weight
	copied := *g
	return &copied, nil
}

func (f *fakeStore) DeleteGoal(ctx context.Context, goalID string) error {
	if _, ok := f.goals[goalID]; !ok {
		return ErrNotFound
	}
	delete(f.goals, goalID)
	f.deleted = append(f.deleted, goalID)
	return nil
}

func (f *fakeStore) ProcessStatus(ctx context.Context, processID string) (string, error) {
	status, ok := f.statuses[processID]
	if !ok {
		return "", ErrProcessNotFound
	}
	return status, nil
}

func (f *fakeStore) EmployeeExists(ctx context.Context, userID string) (bool, error) {
	return f.employees[userID], nil
}

func (f *fakeStore) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	_, ok := f.categories[categoryID]
	return ok, nil
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]Category, error) {
	list := []Category{}
	for id, name := range f.categories {
		list = append(list, Category{ID: id, Name: name})
	}
	return list, nil
}

func (f *fakeStore) ListPredefined(ctx context.Context, filter PredefinedFilter) ([]PredefinedGoal, int, error) {
	return []PredefinedGoal{}, 0, nil
}

type staticDirectory struct {
	managers map[string]string
}

func (d *staticDirectory) ManagerID(ctx context.Context, userID string) (string, error) {
	return d.managers[userID], nil
}

func newService(store *fakeStore) *Service {
	policy := access.NewPolicy(&staticDirectory{managers: map[string]string{"employee": "manager"}})
	return NewService(store, policy)
}

func validInput() CreateGoalInput {
	return CreateGoalInput{CategoryID: "cat-1", Description: "Reduce ticket backlog", Weight: 40}
}

func TestCreateByOwner(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	g, err := svc.Create(context.Background(), "employee", "proc-1", "employee", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Weight != 40 || g.EmployeeID != "employee" {
		t.Fatalf("unexpected goal: %+v", g)
	}
}

func TestCreateByManager(t *testing.T) {
	svc := newService(newFakeStore())
	if _, err := svc.Create(context.Background(), "manager", "proc-1", "employee", validInput()); err != nil {
		t.Fatalf("manager must be allowed to create: %v", err)
	}
}

func TestCreateByStrangerForbidden(t *testing.T) {
	svc := newService(newFakeStore())
	_, err := svc.Create(context.Background(), "stranger", "proc-1", "employee", validInput())
	if !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateOutsideDefinition(t *testing.T) {
	store := newFakeStore()
	store.statuses["proc-1"] = process.StatusInSelfAssessment
	svc := newService(store)

	_, err := svc.Create(context.Background(), "employee", "proc-1", "employee", validInput())
	if !errors.Is(err, access.ErrInvalidProcessState) {
		t.Fatalf("expected state error, got %v", err)
	}
	var stateErr *access.StateError
	if !errors.As(err, &stateErr) || stateErr.Current != process.StatusInSelfAssessment {
		t.Fatalf("state error must name the current status, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(newFakeStore())
	ctx := context.Background()

	in := validInput()
	in.Weight = 101
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("weight 101: got %v", err)
	}

	in = validInput()
	in.Weight = -1
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("weight -1: got %v", err)
	}

	in = validInput()
	in.Description = "shrt"
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("short description: got %v", err)
	}

	in = validInput()
	in.Description = strings.Repeat("a", 501)
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("long description: got %v", err)
	}

	in = validInput()
	in.CategoryID = "missing"
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("unknown category: got %v", err)
	}
}

func TestCreateUnknownProcessAndEmployee(t *testing.T) {
	svc := newService(newFakeStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "employee", "missing", "employee", validInput()); !errors.Is(err, ErrProcessNotFound) {
		t.Fatalf("unknown process: got %v", err)
	}
	if _, err := svc.Create(ctx, "ghost", "proc-1", "ghost", validInput()); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("unknown employee: got %v", err)
	}
}

// A directory that errors on unknown users, like the real user store does.
type strictDirectory struct {
	managers map[string]string
}

func (d *strictDirectory) ManagerID(ctx context.Context, userID string) (string, error) {
	managerID, ok := d.managers[userID]
	if !ok {
		return "", auth.ErrUserNotFound
	}
	return managerID, nil
}

func TestUnknownEmployeeBeforeManagerLookup(t *testing.T) {
	store := newFakeStore()
	policy := access.NewPolicy(&strictDirectory{managers: map[string]string{"employee": "manager"}})
	svc := NewService(store, policy)
	ctx := context.Background()

	if _, err := svc.List(ctx, "manager", "proc-1", "ghost"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("list for unknown employee: got %v", err)
	}
	if _, err := svc.Create(ctx, "manager", "proc-1", "ghost", validInput()); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("create for unknown employee: got %v", err)
	}
}

func TestListReportsWeightTotal(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)
	ctx := context.Background()

	for _, w := range []int{40, 30, 30} {
		in := validInput()
		in.Weight = w
		if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); err != nil {
			t.Fatalf("seed goal: %v", err)
		}
	}

	list, err := svc.List(ctx, "employee", "proc-1", "employee")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.TotalWeight != 100 || !list.WeightComplete {
		t.Fatalf("want complete 100, got %d complete=%v", list.TotalWeight, list.WeightComplete)
	}

	in := validInput()
	in.Weight = 10
	if _, err := svc.Create(ctx, "employee", "proc-1", "employee", in); err != nil {
		t.Fatalf("extra goal: %v", err)
	}
	list, err = svc.List(ctx, "manager", "proc-1", "employee")
	if err != nil {
		t.Fatalf("list as manager: %v", err)
	}
	if list.TotalWeight != 110 || list.WeightComplete {
		t.Fatalf("want incomplete 110, got %d complete=%v", list.TotalWeight, list.WeightComplete)
	}
}

func TestUpdateAndDeleteGatedByProcessState(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)
	ctx := context.Background()

	g, err := svc.Create(ctx, "employee", "proc-1", "employee", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, "employee", g.ID, UpdateGoalInput{CategoryID: "cat-1", Description: "Reduce ticket backlog further", Weight: 55})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Weight != 55 {
		t.Fatalf("update not applied: %+v", updated)
	}

	store.statuses["proc-1"] = process.StatusAwaitingSelfAssessment
	if _, err := svc.Update(ctx, "employee", g.ID, UpdateGoalInput{CategoryID: "cat-1", Description: "Reduce ticket backlog further", Weight: 60}); !errors.Is(err, access.ErrInvalidProcessState) {
		t.Fatalf("update after definition: got %v", err)
	}
	if err := svc.Delete(ctx, "employee", g.ID); !errors.Is(err, access.ErrInvalidProcessState) {
		t.Fatalf("delete after definition: got %v", err)
	}

	store.statuses["proc-1"] = process.StatusInDefinition
	if err := svc.Delete(ctx, "employee", g.ID); err != nil {
		t.Fatalf("delete in definition: %v", err)
	}
	if _, err := svc.Get(ctx, "employee", g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("goal should be gone, got %v", err)
	}
}
