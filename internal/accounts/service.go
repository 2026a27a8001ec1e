package accounts

import (
	"context"

	"github.com/google/uuid"
)

// Service handles account management business logic.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account and returns its generated identifier.
func (s *Service) Register(ctx context.Context, input NewUser) (string, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if err := s.repo.Create(ctx, input); err != nil {
		return "", err
	}
	return input.ID, nil
}

// GetByID fetches a single account by identifier.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByUsername fetches a single account by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// GetByEmail fetches a single account by email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateProfile merges the patch into the stored profile. The repository
// resets the verified flag as part of the same statement.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error {
	affected, err := s.repo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ChangePassword replaces the stored password hash.
func (s *Service) ChangePassword(ctx context.Context, id, newPlaintext string) error {
	return s.repo.UpdatePassword(ctx, id, newPlaintext)
}

// DeleteByID removes an account, reporting how many rows were affected.
func (s *Service) DeleteByID(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}

// DeleteByUsername removes an account by username.
func (s *Service) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	return s.repo.DeleteByUsername(ctx, username)
}

// BulkVerify marks the given usernames as verified, skipping unknown ones.
func (s *Service) BulkVerify(ctx context.Context, usernames []string) error {
	return s.repo.BulkVerify(ctx, usernames)
}
