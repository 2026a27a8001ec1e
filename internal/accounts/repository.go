package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, input NewUser) error
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (int64, error)
	UpdatePassword(ctx context.Context, id, newPlaintext string) error
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	BulkVerify(ctx context.Context, usernames []string) error
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const userColumns = `id, username, first_name, last_name, email, password_hash, verified, created_at, updated_at`

func (r *PGRepository) findOne(ctx context.Context, query string, arg any) (*User, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.Verified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername fetches a user by exact username match.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByEmail fetches a user by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByID fetches a user by identifier.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// Create hashes the plaintext password and persists a new account. The
// verified flag always starts false; only bulk verification can raise it.
func (r *PGRepository) Create(ctx context.Context, input NewUser) error {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (id, username, first_name, last_name, email, password_hash, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, now(), now())`,
		input.ID, input.Username, input.FirstName, input.LastName, input.Email, hash)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// UpdateProfile applies only the patch fields that are present and resets
// verified to false: an edited identity requires re-verification, even when
// the submitted values equal the stored ones. Returns the affected-row count;
// zero means the id is unknown.
func (r *PGRepository) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
		    last_name  = COALESCE($3, last_name),
		    email      = COALESCE($4, email),
		    verified   = FALSE,
		    updated_at = now()
		WHERE id = $1`,
		id, patch.FirstName, patch.LastName, patch.Email)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdatePassword re-hashes and replaces the stored hash. Verified is not
// touched; a password change does not alter identity.
func (r *PGRepository) UpdatePassword(ctx context.Context, id, newPlaintext string) error {
	hash, err := HashPassword(newPlaintext)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
	return err
}

// DeleteByID removes the matching account. Zero affected rows is a normal
// outcome, not an error.
func (r *PGRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByUsername removes the matching account by username.
func (r *PGRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// BulkVerify marks every existing username in the set as verified. Usernames
// without a matching account are silently skipped.
func (r *PGRepository) BulkVerify(ctx context.Context, usernames []string) error {
	if len(usernames) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE users SET verified = TRUE, updated_at = now() WHERE username = ANY($1)`, usernames)
	return err
}

// IsAdmin probes the admin membership relation for the given user id.
func (r *PGRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var isAdmin bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID).Scan(&isAdmin); err != nil {
		return false, err
	}
	return isAdmin, nil
}

var _ Repository = (*PGRepository)(nil)
