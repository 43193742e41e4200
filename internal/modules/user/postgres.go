package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "user_password", "created_at", "updated_at"}

type postgresRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepository) ListUsers(ctx context.Context) ([]*User, error) {
	query, args, err := r.psql.Select(userColumns...).From("users").OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}

	users := []*User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return r.getOne(ctx, sq.Eq{"id": parsedID.String()})
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, sq.Eq{"email": email})
}

func (r *postgresRepository) getOne(ctx context.Context, where sq.Eq) (*User, error) {
	query, args, err := r.psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	user := &User{}
	if err := r.db.GetContext(ctx, user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *postgresRepository) HasUserWithEmail(ctx context.Context, email string) (bool, error) {
	query, args, err := r.psql.Select("1").From("users").Where(sq.Eq{"email": email}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

func (r *postgresRepository) InsertUser(ctx context.Context, user *User) (*User, error) {
	query, args, err := r.psql.Insert("users").
		Columns("id", "first_name", "last_name", "email", "user_password").
		Values(user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash).
		Suffix("RETURNING id, first_name, last_name, email, user_password, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := &User{}
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(created); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) UpdateUser(ctx context.Context, id string, patch UserPatch) (int64, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}

	builder := r.psql.Update("users")
	if patch.FirstName != nil {
		builder = builder.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		builder = builder.Set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Password != nil {
		builder = builder.Set("user_password", *patch.Password)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": parsedID.String()}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepository) DeleteUser(ctx context.Context, id string) (int64, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}

	query, args, err := r.psql.Delete("users").Where(sq.Eq{"id": parsedID.String()}).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.RowsAffected()
}
