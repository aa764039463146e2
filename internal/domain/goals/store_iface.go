package goals

import "context"

type StoreAPI interface {
	ListGoals(ctx context.Context, processID, employeeID string) (Goals, error)
	GetGoal(ctx context.Context, goalID string) (*Goal, error)
	CreateGoal(ctx context.Context, processID, employeeID string, in CreateGoalInput) (*Goal, error)
	UpdateGoal(ctx context.Context, goalID string, in UpdateGoalInput) (*Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error

	ProcessStatus(ctx context.Context, processID string) (string, error)
	EmployeeExists(ctx context.Context, userID string) (bool, error)
	CategoryExists(ctx context.Context, categoryID string) (bool, error)

	ListCategories(ctx context.Context) ([]Category, error)
	ListPredefined(ctx context.Context, filter PredefinedFilter) ([]PredefinedGoal, int, error)
}
