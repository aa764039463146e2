package assessment

import "context"

type StoreAPI interface {
	GoalContext(ctx context.Context, goalID string) (*GoalContext, error)
	Upsert(ctx context.Context, kind Kind, goalID string, in SubmitInput) (*Record, error)
	Get(ctx context.Context, kind Kind, goalID string) (*Record, error)
	GetPair(ctx context.Context, goalID string) (*Pair, error)
}
