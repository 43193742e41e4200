package user

import (
	"context"

	"github.com/google/uuid"
)

type service struct {
	repo       Repository
	bcryptCost int
}

// NewService creates a new user service. bcryptCost is the work factor used
// when hashing passwords.
func NewService(repo Repository, bcryptCost int) Service {
	return &service{repo: repo, bcryptCost: bcryptCost}
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// RegisterUser validates and hashes the password, rejects a taken email, and
// persists the user. Policy violations come back as *PasswordPolicyError and
// taken emails as ErrDuplicateEmail.
func (s *service) RegisterUser(ctx context.Context, newUser NewUser) (*User, error) {
	if err := ValidatePassword(newUser.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := HashPassword(newUser.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.HasUserWithEmail(ctx, newUser.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	return s.repo.InsertUser(ctx, &User{
		ID:           uuid.New(),
		FirstName:    newUser.FirstName,
		LastName:     newUser.LastName,
		Email:        newUser.Email,
		PasswordHash: hashedPassword,
	})
}

// UpdateUser applies patch to current. The password policy is only enforced
// at registration; here a supplied password is just hashed.
func (s *service) UpdateUser(ctx context.Context, current *User, patch UserPatch) error {
	patch, err := s.hashPatchPassword(patch)
	if err != nil {
		return err
	}

	if err := s.checkPatchEmail(ctx, current, patch); err != nil {
		return err
	}

	_, err = s.repo.UpdateUser(ctx, current.ID.String(), patch)
	return err
}

// hashPatchPassword replaces a plaintext password with its hash. An empty
// password is dropped so that nothing unhashed reaches storage.
func (s *service) hashPatchPassword(patch UserPatch) (UserPatch, error) {
	if patch.Password == nil {
		return patch, nil
	}
	if *patch.Password == "" {
		return patch.WithPassword(nil), nil
	}

	hashed, err := HashPassword(*patch.Password, s.bcryptCost)
	if err != nil {
		return patch, err
	}
	return patch.WithPassword(&hashed), nil
}

func (s *service) checkPatchEmail(ctx context.Context, current *User, patch UserPatch) error {
	if patch.Email == nil || *patch.Email == "" || *patch.Email == current.Email {
		return nil
	}

	taken, err := s.repo.HasUserWithEmail(ctx, *patch.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}
	return nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	_, err := s.repo.DeleteUser(ctx, id)
	return err
}
