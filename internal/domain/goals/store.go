package goals

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListGoals(ctx context.Context, processID, employeeID string) (Goals, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT g.id, g.process_id, g.user_id, g.category_id, c.name,
		       g.description, g.weight, g.created_at, g.updated_at
		FROM goals g
		JOIN goal_categories c ON c.id = g.category_id
		WHERE g.process_id = $1 AND g.user_id = $2
		ORDER BY g.created_at, g.id`, processID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	list := Goals{}
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.ProcessID, &g.EmployeeID, &g.CategoryID, &g.CategoryName,
			&g.Description, &g.Weight, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (s *Store) GetGoal(ctx context.Context, goalID string) (*Goal, error) {
	var g Goal
	err := s.DB.QueryRow(ctx, `
		SELECT g.id, g.process_id, g.user_id, g.category_id, c.name,
		       g.description, g.weight, g.created_at, g.updated_at
		FROM goals g
		JOIN goal_categories c ON c.id = g.category_id
		WHERE g.id = $1`, goalID).
		Scan(&g.ID, &g.ProcessID, &g.EmployeeID, &g.CategoryID, &g.CategoryName,
			&g.Description, &g.Weight, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, processID, employeeID string, in CreateGoalInput) (*Goal, error) {
	var g Goal
	err := s.DB.QueryRow(ctx, `
		INSERT INTO goals (process_id, user_id, category_id, description, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, process_id, user_id, category_id,
		          (SELECT name FROM goal_categories WHERE id = goals.category_id),
		          description, weight, created_at, updated_at`,
		processID, employeeID, in.CategoryID, in.Description, in.Weight).
		Scan(&g.ID, &g.ProcessID, &g.EmployeeID, &g.CategoryID, &g.CategoryName,
			&g.Description, &g.Weight, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, goalID string, in UpdateGoalInput) (*Goal, error) {
	var g Goal
	err := s.DB.QueryRow(ctx, `
		UPDATE goals
		SET category_id = $2, description = $3, weight = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, process_id, user_id, category_id,
		          (SELECT name FROM goal_categories WHERE id = goals.category_id),
		          description, weight, created_at, updated_at`,
		goalID, in.CategoryID, in.Description, in.Weight).
		Scan(&g.ID, &g.ProcessID, &g.EmployeeID, &g.CategoryID, &g.CategoryName,
			&g.Description, &g.Weight, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return &g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, goalID string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ProcessStatus(ctx context.Context, processID string) (string, error) {
	var status string
	err := s.DB.QueryRow(ctx, `SELECT status FROM assessment_processes WHERE id = $1`, processID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrProcessNotFound
		}
		return "", fmt.Errorf("process status: %w", err)
	}
	return status, nil
}

func (s *Store) EmployeeExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("employee exists: %w", err)
	}
	return exists, nil
}

func (s *Store) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM goal_categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.DB.Query(ctx, `SELECT id, name FROM goal_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *Store) ListPredefined(ctx context.Context, filter PredefinedFilter) ([]PredefinedGoal, int, error) {
	where := ""
	args := []any{}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where = " WHERE p.category_id = $1"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM predefined_goals p` + where
	if err := s.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count predefined goals: %w", err)
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT p.id, p.category_id, c.name, p.description
		FROM predefined_goals p
		JOIN goal_categories c ON c.id = p.category_id`)
	query.WriteString(where)
	query.WriteString(" ORDER BY c.name, p.description")
	args = append(args, filter.Limit)
	query.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	query.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := s.DB.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list predefined goals: %w", err)
	}
	defer rows.Close()

	list := []PredefinedGoal{}
	for rows.Next() {
		var p PredefinedGoal
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.CategoryName, &p.Description); err != nil {
			return nil, 0, fmt.Errorf("scan predefined goal: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}
