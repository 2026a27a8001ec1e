package auth

// Outcome classifies the result of a login attempt.
type Outcome int

const (
	// OutcomeSuccess means the credentials matched a verified account.
	OutcomeSuccess Outcome = iota
	// OutcomeUserNotFound means no account exists for the username.
	OutcomeUserNotFound
	// OutcomeInvalidPassword means the password did not match the stored hash.
	OutcomeInvalidPassword
	// OutcomeNotVerified means the credentials matched but the account has not
	// been verified by an administrator.
	OutcomeNotVerified
)

// String returns a stable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUserNotFound:
		return "user_not_found"
	case OutcomeInvalidPassword:
		return "invalid_password"
	case OutcomeNotVerified:
		return "not_verified"
	default:
		return "unknown"
	}
}

// LoginResult carries the login classification. UserID is set only on success.
type LoginResult struct {
	Outcome Outcome
	UserID  string
}

// Role classifies an account's administrative standing.
type Role int

const (
	// RoleRegular is an account without admin membership.
	RoleRegular Role = iota
	// RoleAdmin is an account present in the admin membership relation.
	RoleAdmin
)

// String returns a stable label for the role.
func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "regular"
}
