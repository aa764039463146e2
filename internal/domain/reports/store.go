package reports

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

func (s *Store) ProcessInfo(ctx context.Context, processID string) (*ProcessInfo, error) {
	var info ProcessInfo
	err := s.DB.QueryRow(ctx, `SELECT id, title, status FROM assessment_processes WHERE id = $1`, processID).
		Scan(&info.ID, &info.Title, &info.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProcessNotFound
		}
		return nil, fmt.Errorf("process info: %w", err)
	}
	return &info, nil
}

func (s *Store) SummaryRows(ctx context.Context, processID string) ([]SummaryRow, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT u.id, u.name, COALESCE(u.manager_id::text, ''), g.id, g.weight,
		       sa.rating, ma.rating
		FROM goals g
		JOIN users u ON u.id = g.user_id
		LEFT JOIN self_assessments sa ON sa.goal_id = g.id
		LEFT JOIN manager_assessments ma ON ma.goal_id = g.id
		WHERE g.process_id = $1
		ORDER BY u.name, g.created_at`, processID)
	if err != nil {
		return nil, fmt.Errorf("summary rows: %w", err)
	}
	defer rows.Close()

	out := []SummaryRow{}
	for rows.Next() {
		var r SummaryRow
		if err := rows.Scan(&r.EmployeeID, &r.EmployeeName, &r.ManagerID, &r.GoalID, &r.Weight,
			&r.SelfRating, &r.ManagerRating); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var isAdmin bool
	err := s.DB.QueryRow(ctx, `SELECT is_admin FROM users WHERE id = $1`, userID).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("is admin: %w", err)
	}
	return isAdmin, nil
}
