package auth

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Authenticate verifies the credentials and returns the matching user.
// It returns ErrInvalidCredentials for both unknown emails and bad passwords
// so the two cases are indistinguishable to callers.
func (s *Service) Authenticate(ctx context.Context, email, password string) (AuthUser, error) {
	user, err := s.Store.FindUserByEmail(ctx, email)
	if err == ErrUserNotFound {
		return AuthUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthUser{}, err
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return AuthUser{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) UserByID(ctx context.Context, userID string) (User, error) {
	return s.Store.UserByID(ctx, userID)
}

func (s *Service) ManagerID(ctx context.Context, userID string) (string, error) {
	return s.Store.ManagerID(ctx, userID)
}

func (s *Service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.Store.IsAdmin(ctx, userID)
}

func (s *Service) DirectReports(ctx context.Context, managerID string, limit, offset int) ([]User, int, error) {
	return s.Store.DirectReports(ctx, managerID, limit, offset)
}
