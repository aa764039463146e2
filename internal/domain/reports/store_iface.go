package reports

import "context"

type StoreAPI interface {
	ProcessInfo(ctx context.Context, processID string) (*ProcessInfo, error)
	SummaryRows(ctx context.Context, processID string) ([]SummaryRow, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
