package user

import (
	"context"
)

// Repository is the data access layer for users.
type Repository interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	HasUserWithEmail(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, user *User) (*User, error)
	UpdateUser(ctx context.Context, id string, patch UserPatch) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
}
