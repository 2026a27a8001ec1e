package accounts

import (
	"errors"
	"time"
)

// ErrNotFound indicates that the requested account does not exist.
var ErrNotFound = errors.New("accounts: not found")

// ErrDuplicate indicates that a unique field (username, email) is already taken.
var ErrDuplicate = errors.New("accounts: duplicate username or email")

// User represents one account.
type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser carries the fields supplied at registration. The plaintext password
// is hashed inside the repository before anything is persisted.
type NewUser struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ProfilePatch is a partial profile update. Nil fields keep the stored value.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}
