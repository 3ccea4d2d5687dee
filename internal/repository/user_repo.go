package repository

import (
	"context"
	"errors"
	"fmt"

	"dochouse/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user identity records
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	UpdateRole(ctx context.Context, id int, role string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, photo_url, password_hash, role, created_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `INSERT INTO users (username, email, photo_url, password_hash, role, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Email, user.PhotoURL, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, sql string, arg any) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user := &model.User{}
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PhotoURL,
		&user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer decides
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindByEmail retrieves a user by their email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByUsername retrieves a user by their username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// UpdateRole sets the role on a user record and reports affected rows
func (r *userRepository) UpdateRole(ctx context.Context, id int, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update user role: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a user record and reports affected rows
func (r *userRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return tag.RowsAffected(), nil
}
