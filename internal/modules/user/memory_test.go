package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-memory Repository for service and handler tests.
type memoryRepository struct {
	mu    sync.Mutex
	users []*User
	err   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (m *memoryRepository) find(id string) (int, bool) {
	for i, u := range m.users {
		if u.ID.String() == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memoryRepository) ListUsers(ctx context.Context) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	i, ok := m.find(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *m.users[i]
	return &c, nil
}

func (m *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepository) HasUserWithEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	if err == ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *memoryRepository) InsertUser(ctx context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c := *user
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.users = append(m.users, &c)
	out := c
	return &out, nil
}

func (m *memoryRepository) UpdateUser(ctx context.Context, id string, patch UserPatch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	i, ok := m.find(id)
	if !ok {
		return 0, nil
	}
	u := m.users[i]
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.PasswordHash = *patch.Password
	}
	u.UpdatedAt = time.Now()
	return 1, nil
}

func (m *memoryRepository) DeleteUser(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	i, ok := m.find(id)
	if !ok {
		return 0, nil
	}
	m.users = append(m.users[:i], m.users[i+1:]...)
	return 1, nil
}

func strPtr(s string) *string { return &s }
