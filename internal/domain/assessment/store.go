package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func tableFor(kind Kind) (string, error) {
	switch kind {
	case KindSelf:
		return "self_assessments", nil
	case KindManager:
		return "manager_assessments", nil
	default:
		return "", ErrUnknownKind
	}
}

func (s *Store) GoalContext(ctx context.Context, goalID string) (*GoalContext, error) {
	var gc GoalContext
	err := s.DB.QueryRow(ctx, `
		SELECT g.id, g.user_id, g.process_id, p.status
		FROM goals g
		JOIN assessment_processes p ON p.id = g.process_id
		WHERE g.id = $1`, goalID).
		Scan(&gc.GoalID, &gc.EmployeeID, &gc.ProcessID, &gc.ProcessStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("goal context: %w", err)
	}
	return &gc, nil
}

// Upsert writes the assessment in a single statement so a resubmission can
// never race itself into duplicate rows.
func (s *Store) Upsert(ctx context.Context, kind Kind, goalID string, in SubmitInput) (*Record, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var r Record
	query := `
		INSERT INTO ` + table + ` (goal_id, rating, comments)
		VALUES ($1, $2, $3)
		ON CONFLICT (goal_id) DO UPDATE
		SET rating = EXCLUDED.rating, comments = EXCLUDED.comments, updated_at = NOW()
		RETURNING id, goal_id, rating, comments, created_at, updated_at`
	err = s.DB.QueryRow(ctx, query, goalID, in.Rating, in.Comments).
		Scan(&r.ID, &r.GoalID, &r.Rating, &r.Comments, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert %s assessment: %w", kind, err)
	}
	return &r, nil
}

func (s *Store) Get(ctx context.Context, kind Kind, goalID string) (*Record, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var r Record
	query := `SELECT id, goal_id, rating, comments, created_at, updated_at FROM ` + table + ` WHERE goal_id = $1`
	err = s.DB.QueryRow(ctx, query, goalID).
		Scan(&r.ID, &r.GoalID, &r.Rating, &r.Comments, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s assessment: %w", kind, err)
	}
	return &r, nil
}

func (s *Store) GetPair(ctx context.Context, goalID string) (*Pair, error) {
	self, err := s.Get(ctx, KindSelf, goalID)
	if err != nil {
		return nil, err
	}
	manager, err := s.Get(ctx, KindManager, goalID)
	if err != nil {
		return nil, err
	}
	return &Pair{Self: self, Manager: manager}, nil
}
