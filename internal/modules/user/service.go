package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	RegisterUser(ctx context.Context, newUser NewUser) (*User, error)
	UpdateUser(ctx context.Context, current *User, patch UserPatch) error
	DeleteUser(ctx context.Context, id string) error
}
