package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// PasswordPolicyError describes the first password rule a candidate broke.
type PasswordPolicyError struct {
	Rule string
}

func (e *PasswordPolicyError) Error() string {
	return e.Rule
}
