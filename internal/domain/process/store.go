package process

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetProcess(ctx context.Context, processID string) (Process, error) {
	var p Process
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, COALESCE(description, ''), status, active, start_date, end_date, updated_at
    FROM assessment_processes
    WHERE id = $1
  `, processID).Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Active, &p.StartDate, &p.EndDate, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Process{}, ErrNotFound
	}
	if err != nil {
		return Process{}, err
	}
	return p, nil
}

func (s *Store) ListProcesses(ctx context.Context, filter ListFilter) ([]Process, int, error) {
	query := `
    SELECT id, title, COALESCE(description, ''), status, active, start_date, end_date, updated_at
    FROM assessment_processes
    WHERE 1=1
  `
	countQuery := "SELECT COUNT(1) FROM assessment_processes WHERE 1=1"
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		clause := " AND status = $1"
		query += clause
		countQuery += clause
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clause := " AND active = $" + strconv.Itoa(len(args))
		query += clause
		countQuery += clause
	}

	var total int
	if err := s.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY start_date DESC"
	args = append(args, filter.Limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var processes []Process
	for rows.Next() {
		var p Process
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Active, &p.StartDate, &p.EndDate, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		processes = append(processes, p)
	}
	return processes, total, rows.Err()
}

// CompareAndSetStatus updates the status only when the row still holds
// currentStatus, so racing transitions cannot both win.
func (s *Store) CompareAndSetStatus(ctx context.Context, processID, currentStatus, newStatus string, at time.Time) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE assessment_processes
    SET status = $1, updated_at = $2
    WHERE id = $3 AND status = $4
  `, newStatus, at, processID, currentStatus)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendHistory(ctx context.Context, processID, status, actorID string, at time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO status_history (process_id, status, changed_at, changed_by)
    VALUES ($1, $2, $3, $4)
  `, processID, status, at, actorID)
	return err
}

func (s *Store) ListHistory(ctx context.Context, processID string) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT sh.status, sh.changed_at, COALESCE(sh.changed_by::text, ''), COALESCE(u.name, '')
    FROM status_history sh
    LEFT JOIN users u ON u.id = sh.changed_by
    WHERE sh.process_id = $1
    ORDER BY sh.changed_at
  `, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.Status, &entry.ChangedAt, &entry.ChangedByID, &entry.ChangedByName); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) EmployeeWeightSums(ctx context.Context, processID string) ([]EmployeeWeightSum, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT user_id, COALESCE(SUM(weight), 0)
    FROM goals
    WHERE process_id = $1
    GROUP BY user_id
  `, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []EmployeeWeightSum
	for rows.Next() {
		var sum EmployeeWeightSum
		if err := rows.Scan(&sum.EmployeeID, &sum.Total); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, rows.Err()
}

func (s *Store) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var isAdmin bool
	err := s.DB.QueryRow(ctx, "SELECT is_admin FROM users WHERE id = $1", userID).Scan(&isAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}

// ManagesProcessEmployees reports whether the user manages at least one
// employee who holds goals in the process.
func (s *Store) ManagesProcessEmployees(ctx context.Context, processID, userID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM goals g
    JOIN users u ON u.id = g.user_id
    WHERE g.process_id = $1 AND u.manager_id = $2
  `, processID, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

