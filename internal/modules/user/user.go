package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account row.
type User struct {
	ID           uuid.UUID `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"user_password"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewUser carries the fields accepted when registering a user. Password is
// plaintext until the service hashes it.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserPatch is a partial update. A nil field is left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// HasValues reports whether at least one field carries a non-empty value.
// Empty strings do not count.
func (p UserPatch) HasValues() bool {
	for _, f := range []*string{p.FirstName, p.LastName, p.Email, p.Password} {
		if f != nil && *f != "" {
			return true
		}
	}
	return false
}

// WithPassword returns a copy of p with the password replaced.
func (p UserPatch) WithPassword(password *string) UserPatch {
	p.Password = password
	return p
}
