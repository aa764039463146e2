package auth

import (
	"context"
	"errors"
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

func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var user AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, manager_id, is_admin, password_hash
    FROM users
    WHERE email = $1
  `, strings.ToLower(strings.TrimSpace(email))).Scan(&user.ID, &user.Email, &user.Name, &user.ManagerID, &user.IsAdmin, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return AuthUser{}, ErrUserNotFound
	}
	if err != nil {
		return AuthUser{}, err
	}
	return user, nil
}

func (s *Store) UserByID(ctx context.Context, userID string) (User, error) {
	var user User
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, name, manager_id, is_admin, created_at
    FROM users
    WHERE id = $1
  `, userID).Scan(&user.ID, &user.Email, &user.Name, &user.ManagerID, &user.IsAdmin, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// ManagerID returns the manager of the given user, or empty when none is set.
func (s *Store) ManagerID(ctx context.Context, userID string) (string, error) {
	var managerID *string
	err := s.DB.QueryRow(ctx, "SELECT manager_id FROM users WHERE id = $1", userID).Scan(&managerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	if managerID == nil {
		return "", nil
	}
	return *managerID, nil
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

func (s *Store) DirectReports(ctx context.Context, managerID string, limit, offset int) ([]User, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE manager_id = $1", managerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT id, email, name, manager_id, is_admin, created_at
    FROM users
    WHERE manager_id = $1
    ORDER BY name, email
    LIMIT $2 OFFSET $3
  `, managerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.ManagerID, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}
