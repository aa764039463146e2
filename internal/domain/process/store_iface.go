package process

import (
	"context"
	"time"
)

type StoreAPI interface {
	GetProcess(ctx context.Context, processID string) (Process, error)
	ListProcesses(ctx context.Context, filter ListFilter) ([]Process, int, error)
	CompareAndSetStatus(ctx context.Context, processID, currentStatus, newStatus string, at time.Time) (bool, error)
	AppendHistory(ctx context.Context, processID, status, actorID string, at time.Time) error
	ListHistory(ctx context.Context, processID string) ([]HistoryEntry, error)
	EmployeeWeightSums(ctx context.Context, processID string) ([]EmployeeWeightSum, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
	ManagesProcessEmployees(ctx context.Context, processID, userID string) (bool, error)
}
