package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborgate/harborgate/internal/accounts"
	"github.com/harborgate/harborgate/internal/auth"
)

type stubRepo struct {
	users map[string]*accounts.User // keyed by username
	err   error
}

func (s *stubRepo) FindByUsername(ctx context.Context, username string) (*accounts.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, accounts.ErrNotFound
}

type stubMembership struct {
	admins map[string]bool
	err    error
	calls  int
}

func (s *stubMembership) IsAdmin(ctx context.Context, userID string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.admins[userID], nil
}

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := accounts.HashPassword(plaintext)
	require.NoError(t, err)
	return hash
}

func TestLoginVerifiedUser(t *testing.T) {
	repo := &stubRepo{users: map[string]*accounts.User{
		"alice": {ID: "id-alice", Username: "alice", PasswordHash: mustHash(t, "correct1"), Verified: true},
	}}
	svc := auth.NewService(repo, &stubMembership{})
	ctx := context.Background()

	result, err := svc.Login(ctx, "alice", "correct1")
	require.NoError(t, err)
	require.Equal(t, auth.OutcomeSuccess, result.Outcome)
	require.Equal(t, "id-alice", result.UserID)

	result, err = svc.Login(ctx, "alice", "wrong")
	require.NoError(t, err)
	require.Equal(t, auth.OutcomeInvalidPassword, result.Outcome)
	require.Empty(t, result.UserID)

	result, err = svc.Login(ctx, "bob", "x")
	require.NoError(t, err)
	require.Equal(t, auth.OutcomeUserNotFound, result.Outcome)
}

// The verification gate is checked only after the password validates: the
// right password on an unverified account yields NotVerified, the wrong one
// yields InvalidPassword.
func TestLoginUnverifiedUser(t *testing.T) {
	repo := &stubRepo{users: map[string]*accounts.User{
		"carol": {ID: "id-carol", Username: "carol", PasswordHash: mustHash(t, "pw123456"), Verified: false},
	}}
	svc := auth.NewService(repo, &stubMembership{})
	ctx := context.Background()

	result, err := svc.Login(ctx, "carol", "pw123456")
	require.NoError(t, err)
	require.Equal(t, auth.OutcomeNotVerified, result.Outcome)

	result, err = svc.Login(ctx, "carol", "wrong")
	require.NoError(t, err)
	require.Equal(t, auth.OutcomeInvalidPassword, result.Outcome)
}

func TestLoginStorageFailure(t *testing.T) {
	storeDown := errors.New("connection refused")
	svc := auth.NewService(&stubRepo{err: storeDown}, &stubMembership{})

	_, err := svc.Login(context.Background(), "alice", "pw123456")
	require.ErrorIs(t, err, storeDown)
}

func TestCheckAdminRole(t *testing.T) {
	membership := &stubMembership{admins: map[string]bool{"id-alice": true}}
	svc := auth.NewService(&stubRepo{}, membership)
	ctx := context.Background()

	role, err := svc.CheckAdminRole(ctx, "id-alice")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, role)

	role, err = svc.CheckAdminRole(ctx, "id-bob")
	require.NoError(t, err)
	require.Equal(t, auth.RoleRegular, role)
}

// A storage outage must surface as an error, never as RoleRegular.
func TestCheckAdminRoleStorageFailure(t *testing.T) {
	storeDown := errors.New("connection refused")
	svc := auth.NewService(&stubRepo{}, &stubMembership{err: storeDown})

	_, err := svc.CheckAdminRole(context.Background(), "id-alice")
	require.ErrorIs(t, err, storeDown)
}
