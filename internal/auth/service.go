package auth

import (
	"context"
	"errors"

	"github.com/harborgate/harborgate/internal/accounts"
)

// Repository is the slice of the credential store the workflow needs.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*accounts.User, error)
}

// MembershipChecker resolves whether a user id holds admin membership.
type MembershipChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo       Repository
	membership MembershipChecker
}

// NewService constructs a new Service. The membership checker is usually the
// credential store itself, optionally wrapped in a cache.
func NewService(repo Repository, membership MembershipChecker) *Service {
	return &Service{repo: repo, membership: membership}
}

// Login classifies a credential pair. The verified gate is checked strictly
// after password validation, so an unverified response never leaks whether a
// guessed password was correct for some other account. Storage failures
// propagate as errors, never as a classification.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return LoginResult{Outcome: OutcomeUserNotFound}, nil
		}
		return LoginResult{}, err
	}
	if !accounts.CheckPassword(password, user.PasswordHash) {
		return LoginResult{Outcome: OutcomeInvalidPassword}, nil
	}
	if !user.Verified {
		return LoginResult{Outcome: OutcomeNotVerified}, nil
	}
	return LoginResult{Outcome: OutcomeSuccess, UserID: user.ID}, nil
}

// CheckAdminRole resolves the admin standing of a user id. A storage failure
// surfaces as an error; it is never collapsed into RoleRegular.
func (s *Service) CheckAdminRole(ctx context.Context, userID string) (Role, error) {
	isAdmin, err := s.membership.IsAdmin(ctx, userID)
	if err != nil {
		return RoleRegular, err
	}
	if isAdmin {
		return RoleAdmin, nil
	}
	return RoleRegular, nil
}
